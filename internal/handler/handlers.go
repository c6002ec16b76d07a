package handler

import (
	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/handler/grpc"
	"github.com/MKhiriev/fraud-shield/internal/handler/http"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
