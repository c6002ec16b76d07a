package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "fraudshield:revoked:"

// redisCommands is the subset of the go-redis client used by the revocation
// store.
type redisCommands interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisRevocationStore keeps revoked token ids as Redis keys that expire
// together with the token they name.
type redisRevocationStore struct {
	client redisCommands
	logger *logger.Logger
}

// NewConnectRedis opens and pings a Redis client.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Str("address", cfg.Address).Msg("connected to redis successfully")

	return client, nil
}

// NewTokenRevocationStore constructs a Redis-backed [TokenRevocationStore].
func NewTokenRevocationStore(client *redis.Client, logger *logger.Logger) TokenRevocationStore {
	logger.Debug().Msg("creating redis token revocation store")
	return &redisRevocationStore{
		client: client,
		logger: logger,
	}
}

// Revoke records tokenID for ttl. A non-positive ttl means the token has
// already expired, so nothing is stored.
func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedTokenKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRevocationStore.Revoke").Msg("error revoking token")
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRevocationStore.IsRevoked").Msg("error checking token revocation")
		return false, fmt.Errorf("error checking token revocation: %w", err)
	}

	return n > 0, nil
}
