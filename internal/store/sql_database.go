package store

import (
	"database/sql"

	"github.com/playwise/kidsync/internal/logger"
	"github.com/playwise/kidsync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
