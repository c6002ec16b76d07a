package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/events"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/store"
	"github.com/MKhiriev/fraud-shield/internal/validators"
	"github.com/MKhiriev/fraud-shield/models"
)

type gameService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	publisher      events.Publisher
	now            func() time.Time
	logger         *logger.Logger
}

func NewGameService(userRepository store.UserRepository, publisher events.Publisher, logger *logger.Logger) GameService {
	if publisher == nil {
		publisher = events.Nop()
	}

	return &gameService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		publisher:      publisher,
		now:            time.Now,
		logger:         logger,
	}
}

// CoinReward converts a reported score into shield coins.
func CoinReward(score float64) int64 {
	return int64(math.Floor(score / 2))
}

// CompleteGame credits floor(score/2) coins to the user in a single atomic
// increment. Completions are not deduplicated: reporting the same game again
// credits it again.
func (g *gameService) CompleteGame(ctx context.Context, userID string, completion models.GameCompletion) (models.GameReward, error) {
	log := logger.FromContext(ctx)

	if err := g.validator.Validate(ctx, completion); err != nil {
		log.Debug().Err(err).Msg("invalid game completion")
		return models.GameReward{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	score := *completion.Score
	reward := CoinReward(score)

	balance, err := g.userRepository.AddShieldCoins(ctx, userID, reward)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.GameReward{}, ErrUserNotFound
		}
		log.Err(err).Str("user_id", userID).Msg("adding shield coins failed")
		return models.GameReward{}, fmt.Errorf("adding shield coins failed: %w", err)
	}

	gameID := strings.TrimSpace(completion.GameID)
	if err = g.publisher.Publish(ctx, models.EventGameCompleted, models.GameCompletedEvent{
		UserID:         userID,
		GameID:         gameID,
		Score:          score,
		Reward:         reward,
		NewShieldCoins: balance,
		OccurredAt:     g.now().UTC(),
	}); err != nil {
		log.Err(err).Str("event", models.EventGameCompleted).Msg("event publishing failed")
	}

	log.Info().
		Str("user_id", userID).
		Str("game_id", gameID).
		Int64("reward", reward).
		Int64("balance", balance).
		Msg("game completed")

	return models.GameReward{
		NewShieldCoins: balance,
		CoinReward:     reward,
		XPEarned:       score,
	}, nil
}
