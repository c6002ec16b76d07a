package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password does not match hash")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
)
