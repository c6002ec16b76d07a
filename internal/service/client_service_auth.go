package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/adapter"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/store"
	"github.com/MKhiriev/fraud-shield/internal/utils"
	"github.com/MKhiriev/fraud-shield/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, now: time.Now, logger: logger}
}

func (a *clientAuthService) Signup(ctx context.Context, request models.SignupRequest) (models.UserSummary, error) {
	resp, err := a.adapter.Signup(ctx, request)
	if err != nil {
		return models.UserSummary{}, mapAdapterError(err)
	}

	a.logger.Info().Str("user_id", resp.User.ID).Msg("signed up")
	return resp.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, request models.LoginRequest) (models.UserSnapshot, error) {
	resp, err := a.adapter.Login(ctx, request)
	if err != nil {
		return models.UserSnapshot{}, mapAdapterError(err)
	}

	if !request.RememberMe {
		if err = a.sessions.DeleteSession(ctx); err != nil {
			a.logger.Err(err).Msg("failed to forget local session")
		}
		return resp.User, nil
	}

	// a session that cannot be remembered still leaves the player logged in
	// for this run
	claims, err := utils.ParseUnverifiedClaims(resp.Token)
	if err != nil || claims.ExpiresAt == nil {
		a.logger.Err(err).Msg("issued token has unreadable claims, session not remembered")
		return resp.User, nil
	}

	session := models.LocalSession{
		UserID:    claims.UserID,
		Email:     resp.User.Email,
		Username:  resp.User.Username,
		Token:     resp.Token,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("user_id", session.UserID).Msg("failed to remember session")
	}

	return resp.User, nil
}

// RestoreSession returns ErrNotLoggedIn when nothing is stored or the stored
// token has expired. An expired session is removed.
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.LocalSession{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("failed to load local session: %w", err)
	}

	if session.Expired(a.now()) {
		if err = a.sessions.DeleteSession(ctx); err != nil {
			a.logger.Err(err).Msg("failed to delete expired session")
		}
		return models.LocalSession{}, ErrNotLoggedIn
	}

	a.adapter.SetToken(session.Token)
	a.logger.Info().Str("user_id", session.UserID).Msg("session restored")

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Err(mapAdapterError(err)).Msg("server logout failed")
	}

	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	return nil
}
