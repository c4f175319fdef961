package note

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/codedpad/pad-api/sys"
	"sort"
)

// ListByOwner returns every note stored under the given owner, newest first.
// Lists always hit the database so a fresh save shows up right away.
func ListByOwner(ctx context.Context, ownerId string) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, ownerId, title, content, padLocked, padLockCode, createdAt FROM notes WHERE ownerId = ?")
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

	var notes []Note
	for rows.Next() {
		var found Note
		var locked int
		var code sql.NullString
		if err := rows.Scan(&found.Id, &found.OwnerId, &found.Title, &found.Content, &locked, &code, &found.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		found.PadLocked = locked == 1
		found.PadLockCode = code.String
		notes = append(notes, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating db data: %w", err)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}
