package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrRequestFailed is returned when no response was received at all.
	ErrRequestFailed = errors.New("request failed")
)

// ResponseError is a non-2xx API response.
type ResponseError struct {
	StatusCode int

	// Message is the "message" field of the JSON error body, or the raw body
	// when it is not JSON.
	Message string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (%d): %s", statusKind(e.StatusCode), e.StatusCode, e.Message)
}

// Unwrap returns the sentinel matching StatusCode.
func (e *ResponseError) Unwrap() error {
	return statusKind(e.StatusCode)
}
