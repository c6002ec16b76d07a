package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/fraud-shield/internal/config"
	myGRPC "github.com/MKhiriev/fraud-shield/internal/handler/grpc"
	"github.com/MKhiriev/fraud-shield/internal/logger"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) addr() string { return g.gRPCNetListener.Addr().String() }

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.addr()).Msg("gRPC server listening")
	g.handler.SetServing(true)

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown flips health to NOT_SERVING first so probes stop routing traffic,
// then drains in-flight RPCs. GracefulStop is forced to Stop when ctx expires.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		if err := g.gRPCNetListener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("gRPC listener Close: %w", err)
		}
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
