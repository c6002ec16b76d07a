package store

import (
	"context"
	"time"

	"github.com/MKhiriev/fraud-shield/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists player accounts. Implementations exist for
// PostgreSQL and MongoDB; every mutating method touches a single record
// atomically.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record. A duplicate
	// email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by normalised email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateLoginActivity sets lastLogin and currentStreak and returns the
	// updated record.
	UpdateLoginActivity(ctx context.Context, userID string, at time.Time, streak int) (models.User, error)

	// AddShieldCoins increments the balance by amount and returns the new
	// balance.
	AddShieldCoins(ctx context.Context, userID string, amount int64) (int64, error)

	// TopByShieldCoins returns at most limit users ordered by balance,
	// highest first.
	TopByShieldCoins(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// TokenRevocationStore remembers revoked token ids until they would have
// expired anyway.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
