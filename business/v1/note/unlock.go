package note

import (
	"context"
	"github.com/codedpad/pad-api/business/v1/access"
	"github.com/codedpad/pad-api/persistence/v1/note"
)

// Unlock returns the note content when the presented pad lock code matches.
// Scoped to the owner so a code cannot be probed against someone else's note.
func Unlock(ctx context.Context, id uint64, userId, presentedCode string) (string, error) {
	found, err := note.Find(ctx, id)
	if err != nil {
		return "", err
	}
	if found.Id == 0 || found.OwnerId != userId {
		return "", ErrNotFound
	}
	if access.Evaluate(found.PadLocked, found.PadLockCode, presentedCode) == access.Locked {
		return "", ErrForbidden
	}
	return found.Content, nil
}
