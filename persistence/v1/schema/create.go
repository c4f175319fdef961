package schema

import (
	"context"
	"errors"
	"github.com/codedpad/pad-api/sys"
)

func Create(ctx context.Context) error {
	db := sys.R.Database

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}
