package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/handler"
	"github.com/MKhiriev/fraud-shield/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds a listener for every configured transport. Bind errors are
// returned here so a misconfigured address fails at startup.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	return newServer(handlers, cfg, logger)
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.Shutdown()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports() {
		if err := t.shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Str("transport", t.name()).Msg("shutdown failed")
		}
	}
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

// run serves every transport until ctx is done or one of them fails, then
// shuts all of them down.
func (s *server) run(ctx context.Context) error {
	ts := s.transports()
	if len(ts) == 0 {
		return errNoServersToRun
	}

	errCh := make(chan error, len(ts))
	for _, t := range ts {
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		go func(t transport) {
			errCh <- t.serve()
		}(t)
	}

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		runErr = err
	}

	s.Shutdown()

	if runErr != nil {
		return runErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
