package file

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("file not found")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadySaved    = errors.New("file already saved")
	ErrTooLarge        = errors.New("file exceeds the upload size limit")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrStorage         = errors.New("storage failure")
)

// File is the outward view of an uploaded file. For pad locked files read
// without the right code, Filename is blank and Locked is set; blob
// references and pad lock codes never leave the server.
type File struct {
	Id          uint64      `json:"id" example:"1"`
	OwnerId     string      `json:"ownerId" example:"alice"`
	Filename    string      `json:"filename,omitempty" example:"report.pdf"`
	ContentType string      `json:"contentType" example:"application/pdf"`
	Size        int64       `json:"size" example:"2048"`
	Locked      bool        `json:"isLocked" example:"false"`
	SavedBy     []SaveEntry `json:"savedBy,omitempty"`
	CreatedAt   time.Time   `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

// SaveEntry is one entry of a file's savedBy set
type SaveEntry struct {
	UserId  string    `json:"userId" example:"bob"`
	SavedAt time.Time `json:"savedAt" example:"2006-01-02T15:04:05Z"`
}

type NewFile struct {
	OwnerId     string
	Filename    string
	ContentType string
	Size        int64
	PadLocked   bool
	PadLockCode string
}
