package service

import (
	"context"

	"github.com/MKhiriev/fraud-shield/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService signs players up and in and verifies their session tokens.
type AuthService interface {
	// Signup creates a player and returns it with a short-lived token.
	Signup(ctx context.Context, request models.SignupRequest) (models.AuthResult, error)

	// Login checks the credentials, applies the daily streak rule and
	// returns the updated player with a fresh token.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)

	// VerifySession validates a signed token and returns its claims.
	VerifySession(ctx context.Context, tokenString string) (models.Token, error)

	// Logout revokes the token when a revocation store is configured.
	// It never fails.
	Logout(ctx context.Context, tokenString string)
}

// ProfileService serves read-only player projections.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.User, error)
	GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// GameService credits completed games.
type GameService interface {
	CompleteGame(ctx context.Context, userID string, completion models.GameCompletion) (models.GameReward, error)
}

// CatalogService serves the news feed and the games catalogue.
type CatalogService interface {
	News(ctx context.Context, filter models.NewsFilter) []models.NewsArticle
	Categories(ctx context.Context) []models.NewsCategory
	Games(ctx context.Context) []models.GameInfo
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
