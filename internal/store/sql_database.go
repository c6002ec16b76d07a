package store

import (
	"database/sql"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/migrations"
)

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

// DB wraps a *sql.DB together with the dialect it was opened for.
type DB struct {
	*sql.DB
	dialect dialect
	logger  *logger.Logger
}

// Migrate applies the embedded migrations of the DB's dialect.
func (db *DB) Migrate() error {
	if db.dialect == dialectSQLite {
		return migrations.MigrateSQLite(db.DB)
	}
	return migrations.MigratePostgres(db.DB)
}
