package file

import "time"

const fileKey = "files.%d"

type File struct {
	Id          uint64
	OwnerId     string
	BlobRef     string
	Filename    string
	ContentType string
	Size        int64
	PadLocked   bool
	PadLockCode string
	CreatedAt   time.Time
}

type NewFile struct {
	OwnerId     string
	BlobRef     string
	Filename    string
	ContentType string
	Size        int64
	PadLocked   bool
	PadLockCode string
}

type Save struct {
	FileId  uint64
	UserId  string
	SavedAt time.Time
}
