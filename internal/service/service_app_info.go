package service

import (
	"context"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// GetAppVersion returns the build version, date and commit as text.
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.String()
}
