package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/handler"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := newServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return s
}

func healthStatus(addr string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return 0, err
	}
	return resp.GetStatus(), nil
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := newServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BindError(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	first := newTestServer(t, cfg)
	defer first.Shutdown()

	cfg.HTTPAddress = first.httpServer.addr()
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = newServer(handlers, cfg, logger.Nop())
	require.Error(t, err)
}

func TestRun_NoTransports(t *testing.T) {
	s := &server{logger: logger.Nop()}
	require.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	s := newTestServer(t, config.Server{
		HTTPAddress: "127.0.0.1:0",
		GRPCAddress: "127.0.0.1:0",
	})
	httpAddr := s.httpServer.addr()
	grpcAddr := s.gRPCServer.addr()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	require.Eventually(t, func() bool {
		status, err := healthStatus(grpcAddr)
		return err == nil && status == healthpb.HealthCheckResponse_SERVING
	}, 3*time.Second, 20*time.Millisecond)

	resp, err := http.Get("http://" + httpAddr + "/unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + httpAddr + "/unknown")
	assert.Error(t, err)
}
