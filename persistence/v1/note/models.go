package note

import "time"

const noteKey = "notes.%d"

type Note struct {
	Id          uint64
	OwnerId     string
	Title       string
	Content     string
	PadLocked   bool
	PadLockCode string
	CreatedAt   time.Time
}

type NewNote struct {
	OwnerId     string
	Title       string
	Content     string
	PadLocked   bool
	PadLockCode string
}
