package file

import (
	"context"
	"github.com/codedpad/pad-api/business/v1/access"
	"github.com/codedpad/pad-api/business/v1/blob"
	"github.com/codedpad/pad-api/persistence/v1/file"
)

// Delete removes a file; only the owner may, and a pad locked file also
// needs the matching code. The blob goes first so a failed delete can only
// leave an orphaned blob, never a row pointing at missing bytes.
func Delete(ctx context.Context, fileId uint64, requesterId, presentedCode string) error {
	found, err := file.Find(ctx, fileId)
	if err != nil {
		return err
	}
	if found.Id == 0 {
		return ErrNotFound
	}
	if found.OwnerId != requesterId {
		return ErrForbidden
	}
	if access.Evaluate(found.PadLocked, found.PadLockCode, presentedCode) == access.Locked {
		return ErrForbidden
	}

	if err := blob.Remove(ctx, found.BlobRef); err != nil && err != blob.ErrNotFound {
		return err
	}
	return file.Delete(ctx, fileId)
}
