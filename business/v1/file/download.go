package file

import (
	"context"
	"github.com/codedpad/pad-api/business/v1/access"
	"github.com/codedpad/pad-api/business/v1/blob"
	"github.com/codedpad/pad-api/persistence/v1/file"
	"io"
)

// Download checks the pad lock before touching storage and then streams the
// blob back. The caller owns the closer.
func Download(ctx context.Context, fileId uint64, presentedCode string) (File, io.ReadCloser, error) {
	found, err := file.Find(ctx, fileId)
	if err != nil {
		return File{}, nil, err
	}
	if found.Id == 0 {
		return File{}, nil, ErrNotFound
	}
	if access.Evaluate(found.PadLocked, found.PadLockCode, presentedCode) == access.Locked {
		return File{}, nil, ErrForbidden
	}

	stream, err := blob.Get(ctx, found.BlobRef)
	if err != nil {
		if err == blob.ErrNotFound {
			return File{}, nil, ErrNotFound
		}
		return File{}, nil, err
	}
	return view(found, presentedCode), stream, nil
}
