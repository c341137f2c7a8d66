package service

import (
	"github.com/MKhiriev/app-dashboard/internal/config"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/store"
)

type Services struct {
	AppService       AppService
	AdminService     AdminService
	DashboardService DashboardService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	appService := NewAppValidationService().Wrap(NewAppService(storages.AppRepository, logger))

	return &Services{
		AppService:       appService,
		AdminService:     NewAdminService(cfg.App, logger),
		DashboardService: NewDashboardService(cfg.App, logger),
	}
}
