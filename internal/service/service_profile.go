package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/store"
	"github.com/MKhiriev/fraud-shield/models"
)

// LeaderboardSize is the number of players returned by GetLeaderboard.
const LeaderboardSize = 10

type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the user; callers project it with [models.User.Profile]
// so the password hash never leaves the service boundary in a response.
func (p *profileService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// GetLeaderboard returns the top players by shield coins. Ties come back in
// storage order.
func (p *profileService) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := p.userRepository.TopByShieldCoins(ctx, LeaderboardSize)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("leaderboard query failed")
		return nil, fmt.Errorf("leaderboard query failed: %w", err)
	}

	return entries, nil
}
