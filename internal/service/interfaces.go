package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/app-dashboard/models"
)

// AppService manages the dashboard records.
type AppService interface {
	ListApps(ctx context.Context) ([]models.App, error)
	AddApp(ctx context.Context, app models.App) error
	DeleteApp(ctx context.Context, name string) error
}

// AdminService guards the mutating operations.
type AdminService interface {
	// Authorize succeeds when bearerToken is a valid session token or
	// password matches the configured admin password.
	Authorize(ctx context.Context, bearerToken string, password *string) error

	// CreateSession checks password and issues a session token.
	CreateSession(ctx context.Context, password *string) (models.Token, error)

	// ParseToken validates a session token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DashboardService exposes the page settings.
type DashboardService interface {
	Dashboard(ctx context.Context) models.Dashboard
	GetAppVersion(ctx context.Context) string
}
