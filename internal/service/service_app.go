package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/store"
	"github.com/MKhiriev/app-dashboard/models"
)

type appService struct {
	appRepository store.AppRepository

	logger *logger.Logger
}

// NewAppService returns an AppService that stores records through
// appRepository. It performs no validation; wrap it with
// NewAppValidationService for that.
func NewAppService(appRepository store.AppRepository, logger *logger.Logger) AppService {
	return &appService{
		appRepository: appRepository,
		logger:        logger,
	}
}

func (s *appService) ListApps(ctx context.Context) ([]models.App, error) {
	apps, err := s.appRepository.ListApps(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing apps: %w", err)
	}

	return apps, nil
}

func (s *appService) AddApp(ctx context.Context, app models.App) error {
	log := logger.FromContext(ctx)

	if err := s.appRepository.CreateApp(ctx, app); err != nil {
		return fmt.Errorf("error adding app: %w", err)
	}

	log.Info().Str("name", app.Name).Msg("app added")
	return nil
}

func (s *appService) DeleteApp(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	if err := s.appRepository.DeleteAppByName(ctx, name); err != nil {
		return fmt.Errorf("error deleting app: %w", err)
	}

	log.Info().Str("name", name).Msg("app deleted")
	return nil
}
