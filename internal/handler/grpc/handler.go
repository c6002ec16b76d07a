// Package grpc implements the gRPC transport of the server. It serves the
// standard grpc.health.v1 health service so orchestrators can probe the
// API process.
package grpc

import (
	"github.com/MKhiriev/fraud-shield/internal/logger"

	googlegrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported for the REST API.
const ServiceName = "fraudshield.v1.API"

// Handler is the root gRPC transport handler.
//
// It owns the health server. Both the overall status ("") and [ServiceName]
// start as NOT_SERVING; the server flips them once storage is connected and
// back during shutdown.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting NOT_SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s googlegrpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing switches every reported status between SERVING and NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Info().Str("status", status.String()).Msg("health status changed")
}

// Shutdown reports NOT_SERVING and ignores later status updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
