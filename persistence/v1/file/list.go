package file

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/codedpad/pad-api/sys"
	"sort"
)

// ListByOwner returns every file row stored under the given owner, newest first
func ListByOwner(ctx context.Context, ownerId string) ([]File, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, ownerId, blobRef, filename, contentType, size, padLocked, padLockCode, createdAt FROM files WHERE ownerId = ?")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, ownerId)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var files []File
	for rows.Next() {
		var found File
		var locked int
		var code sql.NullString
		if err := rows.Scan(&found.Id, &found.OwnerId, &found.BlobRef, &found.Filename, &found.ContentType, &found.Size, &locked, &code, &found.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		found.PadLocked = locked == 1
		found.PadLockCode = code.String
		files = append(files, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating db data: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].CreatedAt.After(files[j].CreatedAt)
	})
	return files, nil
}

// ListSavedBy returns the files the given user bookmarked, newest bookmark first
func ListSavedBy(ctx context.Context, userId string) ([]File, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT fileId FROM file_saves WHERE userId = ?")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare saves stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query saves stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating db data: %w", err)
	}

	var files []File
	for _, id := range ids {
		found, err := Find(ctx, id)
		if err != nil {
			return nil, err
		}
		if found.Id == 0 {
			// bookmark pointing at a deleted file, skip it
			continue
		}
		files = append(files, found)
	}
	return files, nil
}
