package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/logger"
)

// ClientStorages groups the client-side repositories backed by the local
// SQLite file.
type ClientStorages struct {
	// Sessions keeps the remembered login.
	Sessions LocalSessionRepository

	// PlayHistory keeps finished story games.
	PlayHistory PlayHistoryRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DSN, applies the
// client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Sessions:    NewLocalSessionRepository(db, logger),
		PlayHistory: NewPlayHistoryRepository(db, logger),
		db:          db,
	}, nil
}

func (c *ClientStorages) Close() error {
	return c.db.Close()
}
