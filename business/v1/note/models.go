package note

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("note not found")
	ErrForbidden    = errors.New("forbidden")
)

const defaultTitle = "Untitled Note"

// Note is the outward view of a stored note. For pad locked notes read
// without the right code, Content is blank and Locked is set; the pad lock
// code itself is never part of this struct.
type Note struct {
	Id        uint64    `json:"id" example:"1"`
	OwnerId   string    `json:"ownerId" example:"alice"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content,omitempty" example:"my note text"`
	Locked    bool      `json:"isLocked" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	OwnerId     string `json:"ownerId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PadLocked   bool   `json:"padLocked"`
	PadLockCode string `json:"padLockCode"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
