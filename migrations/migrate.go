// Package migrations holds the embedded goose migrations of the server's
// PostgreSQL credential store and of the client's local SQLite database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	postgresDir = "postgres"
	sqliteDir   = "sqlite"
)

var errNilDB = errors.New("db is nil")

// goose keeps dialect and filesystem in package globals.
var gooseMu sync.Mutex

// MigratePostgres applies the credential store migrations.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "pgx", postgresDir)
}

// MigrateSQLite applies the client database migrations.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", sqliteDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
