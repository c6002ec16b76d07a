// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the terminal client. It is populated by merging built-in
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the credential store DSN, the optional Redis revocation
	// set and the client-side local database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Events holds the optional NATS publisher settings.
	Events Events `envPrefix:"EVENTS_"`

	// Server holds listen addresses and the per-request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the API server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Game holds the dwell intervals of the story game.
	Game Game `envPrefix:"GAME_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a token issued by a regular login.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RememberMeTokenDuration is the lifetime of a token issued by a login
	// with rememberMe set.
	// Env: APP_REMEMBER_ME_TOKEN_DURATION
	RememberMeTokenDuration time.Duration `env:"REMEMBER_ME_TOKEN_DURATION"`

	// SignupTokenDuration is the lifetime of the token issued at signup.
	// Env: APP_SIGNUP_TOKEN_DURATION
	SignupTokenDuration time.Duration `env:"SIGNUP_TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor used for new password hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of every persistence backend.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Redis Redis `envPrefix:"REDIS_"`
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds the credential store connection settings.
type DB struct {
	// DSN selects the backend by scheme: postgres:// (or any pgx DSN) for
	// PostgreSQL, mongodb:// or mongodb+srv:// for MongoDB.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MongoDatabase is the database name used with a MongoDB DSN.
	// Env: STORAGE_DB_MONGO_DATABASE
	MongoDatabase string `env:"MONGO_DATABASE"`
}

// Redis holds the optional token revocation set settings. An empty Address
// disables revocation.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Local holds the client's SQLite database settings.
type Local struct {
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Events holds the optional NATS publisher settings. An empty NATSURL
// disables publishing.
type Events struct {
	// Env: EVENTS_NATS_URL
	NATSURL string `env:"NATS_URL"`

	// SubjectPrefix is prepended to every subject, e.g. "fraudshield".
	// Env: EVENTS_SUBJECT_PREFIX
	SubjectPrefix string `env:"SUBJECT_PREFIX"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request. Zero disables the
	// timeout middleware.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's connection settings.
type Adapter struct {
	// HTTPAddress is the API base address, with or without a scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Game holds the story game timings.
type Game struct {
	// StoryDwell is how long scene feedback stays on screen after a choice.
	// Env: GAME_STORY_DWELL
	StoryDwell time.Duration `env:"STORY_DWELL"`

	// EndDelay is the extra pause on a terminal scene before the quiz starts.
	// Env: GAME_END_DELAY
	EndDelay time.Duration `env:"END_DELAY"`

	// QuizDwell is how long a quiz explanation stays on screen.
	// Env: GAME_QUIZ_DWELL
	QuizDwell time.Duration `env:"QUIZ_DWELL"`
}

// GetStructuredConfig loads the server configuration from all sources in the
// following priority order (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// The result is validated with the server rules.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
