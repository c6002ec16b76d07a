package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fraud-shield/internal/adapter"
	"github.com/MKhiriev/fraud-shield/internal/client"
	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/store"
	"github.com/MKhiriev/fraud-shield/internal/tui"
	"github.com/MKhiriev/fraud-shield/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "fraud-shield-client"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger(role, "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, cfg.Game, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
