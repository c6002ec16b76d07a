package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/events"
	"github.com/MKhiriev/fraud-shield/internal/handler"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/server"
	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/store"
	"github.com/MKhiriev/fraud-shield/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "fraud-shield-server"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role, "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role, cfg.App.LogLevel)
	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(ctx); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	publisher, err := events.NewPublisher(cfg.Events, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting event publisher")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("error closing event publisher")
		}
	}()

	services := service.NewServices(storages, publisher, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
