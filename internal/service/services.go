package service

import (
	"github.com/MKhiriev/fraud-shield/internal/catalog"
	"github.com/MKhiriev/fraud-shield/internal/config"
	"github.com/MKhiriev/fraud-shield/internal/events"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/store"
	"github.com/MKhiriev/fraud-shield/models"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	GameService    GameService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, publisher events.Publisher, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.TokenRevocation, publisher, cfg.App, logger),
		ProfileService: NewProfileService(storages.UserRepository, logger),
		GameService:    NewGameService(storages.UserRepository, publisher, logger),
		CatalogService: NewCatalogService(catalog.New(), logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
