// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by every session token.
//
// Besides the registered claims (iss, iat, exp, jti) it holds the user id and
// email under the same JSON names the web front end already decodes.
type SessionClaims struct {
	// UserID identifies the authenticated user.
	UserID string `json:"userId"`

	// Email is the user's email at issuance time.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token is a signed session token together with its decoded claims.
//
// SignedString holds the compact JWS form ready for the Authorization header
// or the session cookie. The claims are populated both when a token is issued
// and after a successful verification.
type Token struct {
	SessionClaims

	// SignedString is the compact serialised token.
	SignedString string `json:"-"`
}

// String returns the compact serialised token.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresIn returns how long the token stays valid relative to now.
// A token without an expiry, or an already expired one, yields zero.
func (t Token) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}

	left := t.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Expiry returns the expiry time, or the zero time if none is set.
func (t Token) Expiry() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}
