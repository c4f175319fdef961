package note

import (
	"context"
	"fmt"
	"github.com/codedpad/pad-api/persistence/v1/note"
)

func Create(ctx context.Context, newN NewNote) (uint64, error) {
	if newN.OwnerId == "" {
		return 0, fmt.Errorf("%w: ownerId is required", ErrInvalidInput)
	}
	if newN.Content == "" {
		return 0, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if newN.PadLocked && newN.PadLockCode == "" {
		return 0, fmt.Errorf("%w: padLockCode is required for a pad locked note", ErrInvalidInput)
	}
	if newN.Title == "" {
		newN.Title = defaultTitle
	}
	if !newN.PadLocked {
		// never store a code on an unlocked note
		newN.PadLockCode = ""
	}

	return note.Insert(ctx, note.NewNote(newN))
}
