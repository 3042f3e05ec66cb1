package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-robinhood/internal/logger"
	"github.com/MKhiriev/go-robinhood/migrations"
)

// DB is a database handle shared by the repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	version, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error migrating session store")
		return fmt.Errorf("error migrating session store: %w", err)
	}
	db.logger.Debug().Str("func", "*DB.Migrate").Int64("version", version).Msg("session store schema is up to date")

	return nil
}
