package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	keys    map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: make(map[string]time.Duration)}
}

func (f *fakeRedis) Set(_ context.Context, key string, _ any, expiration time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	f.keys[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisRevocationStore_RevokeAndCheck(t *testing.T) {
	fake := newFakeRedis()
	s := &redisRevocationStore{client: fake, logger: logger.Nop()}
	ctx := context.Background()

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Hour))
	assert.Equal(t, time.Hour, fake.keys[revokedTokenKeyPrefix+"jti-1"])

	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisRevocationStore_SkipsExpiredAndEmpty(t *testing.T) {
	fake := newFakeRedis()
	s := &redisRevocationStore{client: fake, logger: logger.Nop()}

	require.NoError(t, s.Revoke(context.Background(), "jti-1", 0))
	require.NoError(t, s.Revoke(context.Background(), "", time.Hour))
	assert.Empty(t, fake.keys)

	revoked, err := s.IsRevoked(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_Errors(t *testing.T) {
	fake := newFakeRedis()
	fake.failErr = errors.New("connection refused")
	s := &redisRevocationStore{client: fake, logger: logger.Nop()}

	assert.Error(t, s.Revoke(context.Background(), "jti-1", time.Minute))

	_, err := s.IsRevoked(context.Background(), "jti-1")
	assert.ErrorIs(t, err, fake.failErr)
}
