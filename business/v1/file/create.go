package file

import (
	"context"
	"errors"
	"fmt"
	"github.com/codedpad/pad-api/business/v1/blob"
	"github.com/codedpad/pad-api/persistence/v1/file"
	"github.com/codedpad/pad-api/sys"
	"io"
)

// Upload streams the bytes into the blob store and only then records the
// metadata row. The row is never written for an unverified blob, and a row
// insert failure removes the blob again so no row points at missing bytes.
func Upload(ctx context.Context, newF NewFile, r io.Reader) (uint64, error) {
	logger := sys.R.Log

	if newF.OwnerId == "" {
		return 0, fmt.Errorf("%w: ownerId is required", ErrInvalidInput)
	}
	if newF.Filename == "" {
		return 0, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	if newF.PadLocked && newF.PadLockCode == "" {
		return 0, fmt.Errorf("%w: padLockCode is required for a pad locked file", ErrInvalidInput)
	}
	if !newF.PadLocked {
		newF.PadLockCode = ""
	}
	if newF.Size > sys.Configs.Upload.MaxBytes {
		return 0, ErrTooLarge
	}
	if !sys.Configs.Upload.AllowedTypes[newF.ContentType] {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, newF.ContentType)
	}

	ref, err := blob.Put(ctx, io.LimitReader(r, sys.Configs.Upload.MaxBytes+1), newF.ContentType)
	if err != nil {
		if errors.Is(err, blob.ErrUnverified) {
			return 0, ErrStorage
		}
		return 0, err
	}

	id, err := file.Insert(ctx, file.NewFile{
		OwnerId:     newF.OwnerId,
		BlobRef:     ref,
		Filename:    newF.Filename,
		ContentType: newF.ContentType,
		Size:        newF.Size,
		PadLocked:   newF.PadLocked,
		PadLockCode: newF.PadLockCode,
	})
	if err != nil {
		if rmErr := blob.Remove(ctx, ref); rmErr != nil && rmErr != blob.ErrNotFound {
			logger.Errorw("failed to remove blob after insert failure", "ref", ref, "ERROR", rmErr)
		}
		return 0, err
	}
	return id, nil
}
