package service

import (
	"context"

	"github.com/MKhiriev/app-dashboard/internal/config"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/models"
)

type dashboardService struct {
	title      string
	appVersion string

	logger *logger.Logger
}

func NewDashboardService(cfg config.App, logger *logger.Logger) DashboardService {
	title := cfg.DashboardTitle
	if title == "" {
		title = config.DefaultDashboardTitle
	}

	return &dashboardService{
		title:      title,
		appVersion: cfg.Version,
		logger:     logger,
	}
}

func (s *dashboardService) Dashboard(ctx context.Context) models.Dashboard {
	return models.Dashboard{Title: s.title, Version: s.appVersion}
}

func (s *dashboardService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
