package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository UserRepository

	// TokenRevocation is nil when no Redis address is configured.
	TokenRevocation TokenRevocationStore

	closers []func(context.Context) error
}

// NewStorages connects the credential store selected by the DSN scheme and,
// when configured, the Redis revocation set. PostgreSQL schemas are
// migrated on startup.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	s := &Storages{}

	switch {
	case cfg.DB.DSN == "":
		return nil, ErrUnsupportedDSN
	case isMongoDSN(cfg.DB.DSN):
		database, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}
		s.UserRepository = NewMongoUserRepository(database, log)
		s.closers = append(s.closers, database.Client().Disconnect)
	default:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		s.UserRepository = NewUserRepository(db, log)
		s.closers = append(s.closers, func(context.Context) error { return db.Close() })
	}

	if cfg.Redis.Address != "" {
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.TokenRevocation = NewTokenRevocationStore(client, log)
		s.closers = append(s.closers, func(context.Context) error { return client.Close() })
	}

	return s, nil
}

// Close releases every connection opened by NewStorages.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
