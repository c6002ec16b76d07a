// Package utils provides general-purpose helpers shared by the server and the
// client: context keys for the authenticated session, JWT issuance and
// verification, JSON response writing, the resty client wrapper and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key holding the authenticated user's id.
var UserIDCtxKey = contextKey("userID")

// EmailCtxKey is the context key holding the authenticated user's email.
var EmailCtxKey = contextKey("email")

// WithSession returns a copy of ctx carrying the verified session identity.
func WithSession(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, EmailCtxKey, email)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// ok is false when the value is missing, has an unexpected type or is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetEmailFromContext retrieves the authenticated email from the context.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}
