package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository]
// over the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a PostgreSQL [UserRepository].
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating postgres user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the row as stored.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.CurrentLevel, user.ShieldCoins, user.CurrentStreak,
		user.CreatedAt, user.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) UpdateLoginActivity(ctx context.Context, userID string, at time.Time, streak int) (models.User, error) {
	return r.findOne(ctx, "*userRepository.UpdateLoginActivity", updateLoginActivity, userID, at, streak)
}

// AddShieldCoins increments the balance in a single statement so concurrent
// rewards never lose an update.
func (r *userRepository) AddShieldCoins(ctx context.Context, userID string, amount int64) (int64, error) {
	log := logger.FromContext(ctx)

	var balance int64
	err := r.db.QueryRowContext(ctx, addShieldCoins, userID, amount).Scan(&balance)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AddShieldCoins").Msg("error adding shield coins")
		return 0, r.classify(err)
	}

	return balance, nil
}

func (r *userRepository) TopByShieldCoins(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLeaderboardQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TopByShieldCoins").Msg("error building leaderboard query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TopByShieldCoins").Msg("error executing leaderboard query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err = rows.Scan(&entry.Username, &entry.ShieldCoins, &entry.CurrentLevel); err != nil {
			log.Err(err).Str("func", "*userRepository.TopByShieldCoins").Msg("error scanning leaderboard row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", fn).Msg("error querying user")
		}
		return models.User{}, r.classify(err)
	}

	return user, nil
}

// classify maps lookup failures onto store errors. A malformed id can never
// match a uuid column, so it is reported as not found.
func (r *userRepository) classify(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	switch postgresError(err) {
	case pgerrcode.NoDataFound, pgerrcode.InvalidTextRepresentation:
		return ErrUserNotFound
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user      models.User
		lastLogin sql.NullTime
	)

	if err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.CurrentLevel, &user.ShieldCoins, &user.CurrentStreak,
		&lastLogin, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return models.User{}, err
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}

	return user, nil
}
