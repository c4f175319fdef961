package file

import (
	"context"
	"github.com/codedpad/pad-api/business/v1/access"
	"github.com/codedpad/pad-api/persistence/v1/file"
	"sort"
)

// List returns the union of files the user owns and files the user has
// bookmarked, each one passed through the pad lock gate
func List(ctx context.Context, userId, presentedCode string) ([]File, error) {
	owned, err := file.ListByOwner(ctx, userId)
	if err != nil {
		return nil, err
	}
	saved, err := file.ListSavedBy(ctx, userId)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]bool, len(owned))
	merged := make([]file.File, 0, len(owned)+len(saved))
	for _, f := range owned {
		seen[f.Id] = true
		merged = append(merged, f)
	}
	for _, f := range saved {
		if !seen[f.Id] {
			merged = append(merged, f)
		}
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	views := make([]File, 0, len(merged))
	for _, f := range merged {
		v := view(f, presentedCode)
		// the savedBy set is only shown to the file's owner
		if f.OwnerId == userId {
			saves, err := file.ListSaves(ctx, f.Id)
			if err != nil {
				return nil, err
			}
			for _, s := range saves {
				v.SavedBy = append(v.SavedBy, SaveEntry{UserId: s.UserId, SavedAt: s.SavedAt})
			}
		}
		views = append(views, v)
	}
	return views, nil
}

// view applies the pad lock gate and shapes the row for serialization
func view(f file.File, presentedCode string) File {
	v := File{
		Id:          f.Id,
		OwnerId:     f.OwnerId,
		ContentType: f.ContentType,
		Size:        f.Size,
		CreatedAt:   f.CreatedAt,
	}
	if access.Evaluate(f.PadLocked, f.PadLockCode, presentedCode) == access.Locked {
		v.Locked = true
		return v
	}
	v.Filename = f.Filename
	return v
}
