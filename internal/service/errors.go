package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every request validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmailAlreadyRegistered is returned by signup for a taken email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned by login on a password mismatch.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNoToken is returned when a session token is required but absent.
	ErrNoToken = errors.New("no session token provided")

	// ErrTokenIsExpiredOrInvalid covers every token verification failure.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenRevoked is returned for a token that was logged out.
	ErrTokenRevoked = errors.New("token is revoked")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrPasswordHashingFailed = errors.New("password hashing failed")
)

// client side
var (
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrServerUnavailable    = errors.New("server is unavailable")
	ErrRewardAlreadyClaimed = errors.New("reward already claimed")
	ErrNoPlayRecord         = errors.New("play record has not been saved")
)

// IsUnauthorized reports whether err means the caller has no valid session.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrNoToken) ||
		errors.Is(err, ErrTokenIsExpiredOrInvalid) ||
		errors.Is(err, ErrTokenRevoked)
}
