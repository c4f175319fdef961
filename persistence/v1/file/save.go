package file

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/codedpad/pad-api/sys"
	"time"
)

// HasSave reports whether the user already bookmarked the file
func HasSave(ctx context.Context, fileId uint64, userId string) (bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT fileId FROM file_saves WHERE fileId = ? AND userId = ?")
	if err != nil {
		return false, fmt.Errorf("failed to prepare save lookup stmt: %w", err)
	}
	row := stmt.QueryRowContext(dbCtx, fileId, userId)

	var id uint64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error parsing db data: %w", err)
	}
	return true, nil
}

// InsertSave records the bookmark; callers check HasSave first to keep it deduplicated
func InsertSave(ctx context.Context, fileId uint64, userId string) error {
	db := sys.R.Database

	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO file_saves (fileId, userId, savedAt) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare save stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, fileId, userId, n); err != nil {
		return fmt.Errorf("failed to exec save stmt: %w", err)
	}
	return nil
}

// ListSaves returns the savedBy entries for a file
func ListSaves(ctx context.Context, fileId uint64) ([]Save, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT fileId, userId, savedAt FROM file_saves WHERE fileId = ?")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare saves stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, fileId)
	if err != nil {
		return nil, fmt.Errorf("failed to query saves stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var saves []Save
	for rows.Next() {
		var s Save
		if err := rows.Scan(&s.FileId, &s.UserId, &s.SavedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		saves = append(saves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating db data: %w", err)
	}
	return saves, nil
}
