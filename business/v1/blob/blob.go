package blob

import (
	"context"
	"errors"
	"fmt"
	"github.com/codedpad/pad-api/sys"
	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	"io"
	"time"
)

var (
	// ErrNotFound means the bucket has no object under the given reference
	ErrNotFound = errors.New("blob not found")
	// ErrUnverified means the write finished but could not be confirmed durable
	ErrUnverified = errors.New("blob write could not be verified")
)

// Put streams the upload into the bucket under a fresh reference and only
// returns that reference once the bucket's read path can see the object.
// An unverifiable write is deleted best effort and reported as a failure,
// never as a success.
func Put(ctx context.Context, r io.Reader, contentType string) (string, error) {
	logger := sys.R.Log
	bucket := sys.R.Blob

	ref := uuid.NewString()

	written, err := func() (int64, error) {
		wCtx, wCancel := context.WithTimeout(ctx, sys.Configs.Storage.OperationTimeout)
		defer wCancel()
		w, err := bucket.NewWriter(wCtx, ref, &blob.WriterOptions{
			ContentType: contentType,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to open blob writer: %w", err)
		}
		n, err := io.Copy(w, r)
		if err != nil {
			_ = w.Close()
			return 0, fmt.Errorf("failed to write blob: %w", err)
		}
		if err := w.Close(); err != nil {
			return 0, fmt.Errorf("failed to commit blob: %w", err)
		}
		return n, nil
	}()
	if err != nil {
		return "", err
	}

	if err := verify(ctx, ref, written); err != nil {
		logger.Errorw("blob verification failed", "ref", ref, "ERROR", err)
		if err := Remove(ctx, ref); err != nil && err != ErrNotFound {
			logger.Errorw("failed to remove unverified blob", "ref", ref, "ERROR", err)
		}
		return "", ErrUnverified
	}

	return ref, nil
}

// verify polls the bucket until the object is visible with the expected
// size, within the configured attempt budget
func verify(ctx context.Context, ref string, size int64) error {
	attempts := sys.Configs.Storage.VerifyAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(sys.Configs.Storage.VerifyDelay):
			}
		}

		vCtx, vCancel := context.WithTimeout(ctx, sys.Configs.Storage.OperationTimeout)
		attrs, err := sys.R.Blob.Attributes(vCtx, ref)
		vCancel()
		switch {
		case err != nil:
			lastErr = err
		case attrs.Size != size:
			lastErr = fmt.Errorf("blob size mismatch: wrote %d, store reports %d", size, attrs.Size)
		default:
			return nil
		}
	}
	if lastErr == nil {
		lastErr = errors.New("verification attempts exhausted")
	}
	return lastErr
}

// Get opens the stored bytes for reading; the caller owns the closer
func Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	reader, err := sys.R.Blob.NewReader(ctx, ref, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open blob reader: %w", err)
	}
	return reader, nil
}

// Remove deletes the stored bytes; removing an unknown reference reports
// ErrNotFound rather than a hard failure
func Remove(ctx context.Context, ref string) error {
	rmCtx, rmCancel := context.WithTimeout(ctx, sys.Configs.Storage.OperationTimeout)
	defer rmCancel()
	if err := sys.R.Blob.Delete(rmCtx, ref); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}
