package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing DSN, or an in-memory DSN
	// for the client's local database.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid token or hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGameConfigs indicates negative story game timings.
	ErrInvalidGameConfigs = errors.New("invalid game configuration")
)
