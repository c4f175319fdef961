package note

import (
	"context"
	"fmt"
	"github.com/codedpad/pad-api/sys"
)

func Delete(ctx context.Context, id uint64) error {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, id); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Del(tcCtx, fmt.Sprintf(noteKey, id)).Err(); err != nil {
		logger.Error("failure to evict note ", id, " from cache: ", err.Error())
	}

	return nil
}
