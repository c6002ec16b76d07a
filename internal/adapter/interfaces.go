// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the Fraud Shield API.
//
// [ServerAdapter] decouples the client services from HTTP. Error responses
// are returned as [*ResponseError] values that unwrap to the status sentinels
// in errors.go, so callers can use [errors.Is] for the status and
// [errors.As] for the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/fraud-shield/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when logged out.
	Token() string

	// Signup registers a player and stores the returned token.
	Signup(ctx context.Context, request models.SignupRequest) (models.SignupResponse, error)

	// Login authenticates a player and stores the returned token.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	// Logout notifies the server and forgets the stored token, even when the
	// request fails.
	Logout(ctx context.Context) error

	Profile(ctx context.Context) (models.Profile, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	CompleteGame(ctx context.Context, completion models.GameCompletion) (models.GameReward, error)

	News(ctx context.Context, filter models.NewsFilter) (models.NewsResponse, error)
	Games(ctx context.Context) ([]models.GameInfo, error)

	// Version returns the server build information as text.
	Version(ctx context.Context) (string, error)
}
