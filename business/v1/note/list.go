package note

import (
	"context"
	"github.com/codedpad/pad-api/persistence/v1/note"
)

// List returns every note under the owner, each one passed through the pad
// lock gate against the presented code
func List(ctx context.Context, ownerId, presentedCode string) ([]Note, error) {
	found, err := note.ListByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	views := make([]Note, 0, len(found))
	for _, n := range found {
		views = append(views, view(n, presentedCode))
	}
	return views, nil
}
