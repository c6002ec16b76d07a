package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/utils"
	"github.com/MKhiriev/fraud-shield/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. Returns an error if the configured address cannot be
// parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Signup POSTs /signup and stores the issued token.
func (h *httpServerAdapter) Signup(ctx context.Context, request models.SignupRequest) (models.SignupResponse, error) {
	var result models.SignupResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Post("/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("%w: signup: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// Login POSTs /login and stores the issued token.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: login: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/logout")
	if err != nil {
		return fmt.Errorf("%w: logout: %w", ErrRequestFailed, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	var result models.ProfileResponse

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: profile: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return result.User, nil
}

func (h *httpServerAdapter) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var result models.LeaderboardResponse

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/leaderboard")
	if err != nil {
		return nil, fmt.Errorf("%w: leaderboard: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Leaderboard, nil
}

func (h *httpServerAdapter) CompleteGame(ctx context.Context, completion models.GameCompletion) (models.GameReward, error) {
	var result models.GameRewardResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(completion).
		SetResult(&result).
		Post("/game/complete")
	if err != nil {
		return models.GameReward{}, fmt.Errorf("%w: complete game: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GameReward{}, err
	}

	return result.GameReward, nil
}

func (h *httpServerAdapter) News(ctx context.Context, filter models.NewsFilter) (models.NewsResponse, error) {
	var result models.NewsResponse

	req := h.client.R().SetContext(ctx).SetResult(&result)
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}
	if filter.Query != "" {
		req.SetQueryParam("q", filter.Query)
	}

	resp, err := req.Get("/news")
	if err != nil {
		return models.NewsResponse{}, fmt.Errorf("%w: news: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NewsResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Games(ctx context.Context) ([]models.GameInfo, error) {
	var result models.GamesResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&result).Get("/games")
	if err != nil {
		return nil, fmt.Errorf("%w: games: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Games, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("%w: version: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
