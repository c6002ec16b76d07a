// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when looking for the
// session token. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned when neither the "Authorization" header
	// nor the token cookie carries a token.
	ErrNoSessionToken = errors.New("no session token in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
