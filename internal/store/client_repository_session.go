// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/models"
)

// localSessionRepository stores the remembered login in a single-row table.
type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession replaces any previously remembered login.
func (l *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	_, err := l.DB.ExecContext(ctx, saveSession,
		session.UserID,
		session.Email,
		session.Username,
		session.Token,
		session.ExpiresAt.UTC(),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Str("user_id", session.UserID).
			Msg("failed to save local session")
		return fmt.Errorf("failed to save local session: %w", err)
	}

	return nil
}

func (l *localSessionRepository) GetSession(ctx context.Context) (models.LocalSession, error) {
	var session models.LocalSession
	err := l.DB.QueryRowContext(ctx, getSession).Scan(
		&session.UserID,
		&session.Email,
		&session.Username,
		&session.Token,
		&session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.GetSession").Msg("failed to read local session")
		return models.LocalSession{}, fmt.Errorf("failed to read local session: %w", err)
	}

	return session, nil
}

// DeleteSession forgets the remembered login. Deleting an absent session is
// not an error.
func (l *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.DeleteSession").Msg("failed to delete local session")
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	return nil
}
