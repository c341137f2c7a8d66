package store

//go:generate mockgen -source=interfaces.go -destination=../mock/app_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/app-dashboard/models"
)

// AppRepository persists dashboard records.
type AppRepository interface {
	// ListApps returns every stored record in insertion order. The result is
	// never nil.
	ListApps(ctx context.Context) ([]models.App, error)

	// CreateApp stores app as a new record. Names are not unique.
	CreateApp(ctx context.Context, app models.App) error

	// DeleteAppByName removes the earliest record whose name equals name.
	// Returns ErrAppNotFound when nothing matched.
	DeleteAppByName(ctx context.Context, name string) error
}
