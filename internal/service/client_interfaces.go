package service

import (
	"context"

	"github.com/MKhiriev/fraud-shield/internal/story"
	"github.com/MKhiriev/fraud-shield/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration,
// login and the remembered session. Implementations keep the server
// adapter's bearer token in step with the local session store.
type ClientAuthService interface {
	// Signup registers a new player on the server. The short-lived signup
	// token is kept in memory only.
	Signup(ctx context.Context, request models.SignupRequest) (models.UserSummary, error)

	// Login authenticates the player. With RememberMe set the session is
	// saved to the local store so the next start can skip the login screen;
	// otherwise any stored session is removed.
	Login(ctx context.Context, request models.LoginRequest) (models.UserSnapshot, error)

	// RestoreSession loads the stored session and hands its token to the
	// adapter. Returns ErrNotLoggedIn when there is no usable session.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// Logout notifies the server and drops the local session. A failing
	// server call does not keep the player logged in.
	Logout(ctx context.Context) error
}

// ClientPlayerService defines the client-side contract for everything a
// logged-in player sees after the login screen.
type ClientPlayerService interface {
	Profile(ctx context.Context) (models.Profile, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	News(ctx context.Context, filter models.NewsFilter) (models.NewsResponse, error)
	Games(ctx context.Context) ([]models.GameInfo, error)
	ServerVersion(ctx context.Context) (string, error)

	// RecordGame stores a finished story game in the local play history.
	RecordGame(ctx context.Context, result story.Result) (models.PlayRecord, error)

	// ClaimReward reports the story game to the server and marks the record
	// as claimed. A record can be claimed once.
	ClaimReward(ctx context.Context, record models.PlayRecord) (models.GameReward, models.PlayRecord, error)

	// History returns the most recent play records, newest first.
	History(ctx context.Context, limit int) ([]models.PlayRecord, error)
}
