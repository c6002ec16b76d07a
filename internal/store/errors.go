package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user would share the
	// email of an existing one.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned by the client when no login is
	// remembered locally.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrPlayRecordNotFound is returned when a play record id is unknown.
	ErrPlayRecordNotFound = errors.New("play record not found")

	// ErrUnsupportedDSN is returned when the credential store DSN selects
	// no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
