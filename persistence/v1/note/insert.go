package note

import (
	"context"
	"fmt"
	"github.com/codedpad/pad-api/sys"
	"time"
)

func Insert(ctx context.Context, newN NewNote) (uint64, error) {
	db := sys.R.Database

	n := time.Now().UTC()

	locked := 0
	if newN.PadLocked {
		locked = 1
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notes (ownerId, title, content, padLocked, padLockCode, createdAt) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	res, err := stmt.ExecContext(dbCtx, newN.OwnerId, newN.Title, newN.Content, locked, newN.PadLockCode, n)
	if err != nil {
		return 0, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return uint64(id), nil
}
