package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyGameID   = errors.New("gameId is required")
	ErrMissingScore  = errors.New("score is required")
	ErrInvalidScore  = errors.New("score must be a finite number between 0 and 1000000")
)
