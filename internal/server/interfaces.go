package server

import "context"

// Server defines the lifecycle contract of the process-level server.
//
// [RunServer] blocks until SIGINT, SIGTERM or SIGQUIT is received and then
// shuts every transport down; [Shutdown] may also be called directly.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is a single listener managed by [server].
type transport interface {
	name() string
	serve() error
	shutdown(ctx context.Context) error
}
