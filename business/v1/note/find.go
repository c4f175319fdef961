package note

import (
	"context"
	"github.com/codedpad/pad-api/business/v1/access"
	"github.com/codedpad/pad-api/persistence/v1/note"
)

// Find fetches a single note, pad lock applied the same way the list is
func Find(ctx context.Context, id uint64, presentedCode string) (Note, error) {
	found, err := note.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if found.Id == 0 {
		return Note{}, ErrNotFound
	}
	return view(found, presentedCode), nil
}

// view applies the pad lock gate and shapes the row for serialization
func view(n note.Note, presentedCode string) Note {
	v := Note{
		Id:        n.Id,
		OwnerId:   n.OwnerId,
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
	}
	if access.Evaluate(n.PadLocked, n.PadLockCode, presentedCode) == access.Locked {
		v.Locked = true
		return v
	}
	v.Content = n.Content
	return v
}
