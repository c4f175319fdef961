package file

import (
	"context"
	"fmt"
	"github.com/codedpad/pad-api/persistence/v1/file"
)

// Save bookmarks a file for the user. Saving twice is a no-op reported as
// ErrAlreadySaved; the savedBy set only ever grows by one entry per user.
func Save(ctx context.Context, fileId uint64, userId string) error {
	if userId == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	found, err := file.Find(ctx, fileId)
	if err != nil {
		return err
	}
	if found.Id == 0 {
		return ErrNotFound
	}

	has, err := file.HasSave(ctx, fileId, userId)
	if err != nil {
		return err
	}
	if has {
		return ErrAlreadySaved
	}
	return file.InsertSave(ctx, fileId, userId)
}
