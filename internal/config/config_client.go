package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the client's local database settings.
type ClientStorage struct {
	// DSN is the SQLite connection string of the local database.
	DSN string
}

// ClientGame holds the story game timings used by the terminal UI.
type ClientGame struct {
	StoryDwell time.Duration
	EndDelay   time.Duration
	QuizDwell  time.Duration
}

// ClientConfig is the client view assembled from [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	Storage  ClientStorage
	Game     ClientGame
	LogLevel string
}

// GetClientConfig builds and validates the client configuration.
//
// It merges the same sources as [GetStructuredConfig], maps only the fields
// relevant to the client runtime and validates the resulting [ClientConfig].
// Server-only settings such as the token sign key are not required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.Local.DSN,
		},
		Game: ClientGame{
			StoryDwell: cfg.Game.StoryDwell,
			EndDelay:   cfg.Game.EndDelay,
			QuizDwell:  cfg.Game.QuizDwell,
		},
		LogLevel: cfg.App.LogLevel,
	}
}
