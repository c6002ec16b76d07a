package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/crypto"
	"github.com/MKhiriev/fraud-shield/internal/events"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/store"
	"github.com/MKhiriev/fraud-shield/internal/utils"
	"github.com/MKhiriev/fraud-shield/internal/validators"
	"github.com/MKhiriev/fraud-shield/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository

	// revocations is nil when no revocation store is configured; logout is
	// then advisory only.
	revocations store.TokenRevocationStore

	hasher    crypto.PasswordHasher
	validator validators.Validator
	publisher events.Publisher
	ids       *utils.UUIDGenerator

	tokenSignKey            string
	tokenIssuer             string
	tokenDuration           time.Duration
	rememberMeTokenDuration time.Duration
	signupTokenDuration     time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the app settings.
// revocations and publisher may be nil.
func NewAuthService(
	userRepository store.UserRepository,
	revocations store.TokenRevocationStore,
	publisher events.Publisher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	if publisher == nil {
		publisher = events.Nop()
	}

	return &authService{
		userRepository:          userRepository,
		revocations:             revocations,
		hasher:                  crypto.NewBcryptHasher(cfg.BcryptCost),
		validator:               validators.NewRequestValidator(),
		publisher:               publisher,
		ids:                     utils.NewUUIDGenerator(),
		tokenSignKey:            cfg.TokenSignKey,
		tokenIssuer:             cfg.TokenIssuer,
		tokenDuration:           cfg.TokenDuration,
		rememberMeTokenDuration: cfg.RememberMeTokenDuration,
		signupTokenDuration:     cfg.SignupTokenDuration,
		now:                     time.Now,
		logger:                  logger,
	}
}

// Signup creates a user with default progression and issues a token with the
// signup lifetime.
//
// Returns:
//   - ErrInvalidDataProvided if a field is blank.
//   - ErrEmailAlreadyRegistered if the email is taken, whether detected by the
//     lookup or by the store's unique index.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid signup request")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := normalizeEmail(request.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.AuthResult{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(request.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	now := a.now().UTC()
	created, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		Username:     strings.TrimSpace(request.Username),
		Email:        email,
		PasswordHash: hash,
		CurrentLevel: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthResult{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(created, a.signupTokenDuration)
	if err != nil {
		return models.AuthResult{}, err
	}

	a.publish(ctx, models.EventUserSignedUp, models.UserEvent{
		UserID:     created.ID,
		Email:      created.Email,
		OccurredAt: now,
	})
	log.Info().Str("user_id", created.ID).Msg("user signed up")

	return models.AuthResult{User: created, Token: token}, nil
}

// Login authenticates a user, records the login and issues a token that
// lives for the remember-me duration when requested.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is blank.
//   - ErrUserNotFound if no user has the email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request, validators.FieldEmail, validators.FieldPassword); err != nil {
		log.Debug().Err(err).Msg("invalid login request")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := normalizeEmail(request.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AuthResult{}, ErrUserNotFound
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, request.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Debug().Str("user_id", user.ID).Msg("wrong password")
			return models.AuthResult{}, ErrWrongPassword
		}
		log.Err(err).Str("user_id", user.ID).Msg("password comparison failed")
		return models.AuthResult{}, fmt.Errorf("password comparison failed: %w", err)
	}

	now := a.now().UTC()
	streak := NextStreak(user.LastLogin, user.CurrentStreak, now)

	updated, err := a.userRepository.UpdateLoginActivity(ctx, user.ID, now, streak)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("login activity update failed")
		return models.AuthResult{}, fmt.Errorf("login activity update failed: %w", err)
	}

	duration := a.tokenDuration
	if request.RememberMe {
		duration = a.rememberMeTokenDuration
	}

	token, err := a.createToken(updated, duration)
	if err != nil {
		return models.AuthResult{}, err
	}

	a.publish(ctx, models.EventUserLoggedIn, models.UserEvent{
		UserID:        updated.ID,
		Email:         updated.Email,
		CurrentStreak: updated.CurrentStreak,
		OccurredAt:    now,
	})

	return models.AuthResult{User: updated, Token: token}, nil
}

// VerifySession validates the signature, method, issuer and expiry of
// tokenString and checks the revocation store when one is configured.
func (a *authService) VerifySession(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrNoToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if a.revocations != nil {
		revoked, err := a.revocations.IsRevoked(ctx, token.ID)
		if err != nil {
			return models.Token{}, fmt.Errorf("token revocation check failed: %w", err)
		}
		if revoked {
			return models.Token{}, ErrTokenRevoked
		}
	}

	return token, nil
}

// Logout adds a valid token to the revocation store for the rest of its
// lifetime. Invalid tokens and store failures are ignored.
func (a *authService) Logout(ctx context.Context, tokenString string) {
	if a.revocations == nil || tokenString == "" {
		return
	}

	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("logout with an invalid token")
		return
	}

	if err = a.revocations.Revoke(ctx, token.ID, token.ExpiresIn(a.now())); err != nil {
		log.Err(err).Str("user_id", token.UserID).Msg("token revocation failed")
		return
	}
	log.Info().Str("user_id", token.UserID).Msg("token revoked")
}

func (a *authService) createToken(user models.User, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, duration, a.tokenSignKey)
	if err != nil {
		a.logger.Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) publish(ctx context.Context, event string, payload any) {
	if err := a.publisher.Publish(ctx, event, payload); err != nil {
		logger.FromContext(ctx).Err(err).Str("event", event).Msg("event publishing failed")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
