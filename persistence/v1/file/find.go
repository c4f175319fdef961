package file

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/codedpad/pad-api/sys"
	"github.com/go-redis/redis/v8"
)

func Find(ctx context.Context, id uint64) (File, error) {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	key := fmt.Sprintf(fileKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get file ", id, " from cache: ", err.Error())
	}
	if get != "" {
		var cached File
		if err := json.Unmarshal([]byte(get), &cached); err != nil {
			logger.Error("error parsing cached response for key ", key, ": ", err.Error())
		} else {
			return cached, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, ownerId, blobRef, filename, contentType, size, padLocked, padLockCode, createdAt FROM files WHERE id = ?")
	if err != nil {
		return File{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	row := stmt.QueryRowContext(dbCtx, id)

	var found File
	var locked int
	var code sql.NullString
	if err := row.Scan(&found.Id, &found.OwnerId, &found.BlobRef, &found.Filename, &found.ContentType, &found.Size, &locked, &code, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("error parsing db data: %w", err)
	}
	found.PadLocked = locked == 1
	found.PadLockCode = code.String

	if data, err := json.Marshal(found); err != nil {
		logger.Error("error parsing data to cache for key ", key, ": ", err.Error())
	} else {
		scCtx, scCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer scCancel()

		if err := cache.Set(scCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
			logger.Error("failure to set file ", id, " into cache: ", err.Error())
		}
	}

	return found, nil
}
