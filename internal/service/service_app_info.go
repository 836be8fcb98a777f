package service

import (
	"context"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/models"
)

type appInfoService struct {
	appInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports buildInfo; a configured version overrides the
// linker-provided one.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	if cfg.Version != "" {
		buildInfo.BuildVersion = cfg.Version
	}

	return &appInfoService{
		appInfo: buildInfo,
		logger:  logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.appInfo
}
