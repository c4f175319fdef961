package note

import (
	"context"
	"github.com/codedpad/pad-api/persistence/v1/note"
)

// Delete removes a note; only its owner may do it
func Delete(ctx context.Context, id uint64, requesterId string) error {
	found, err := note.Find(ctx, id)
	if err != nil {
		return err
	}
	if found.Id == 0 {
		return ErrNotFound
	}
	if found.OwnerId != requesterId {
		return ErrForbidden
	}
	return note.Delete(ctx, id)
}
