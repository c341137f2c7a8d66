package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/app-dashboard/internal/validators"
	"github.com/MKhiriev/app-dashboard/models"
)

// AppServiceWrapper defines middleware composition for AppService.
// Implementations wrap an existing AppService to add behavior such as
// logging or validating.
type AppServiceWrapper interface {
	Wrap(AppService) AppService // returns a decorated AppService applying additional behavior
}

// AppValidationService rejects invalid input before it reaches the wrapped
// AppService.
type AppValidationService struct {
	inner     AppService
	validator validators.Validator
}

func NewAppValidationService() AppServiceWrapper {
	return &AppValidationService{
		validator: validators.NewAppValidator(),
	}
}

func (v *AppValidationService) ListApps(ctx context.Context) ([]models.App, error) {
	return v.inner.ListApps(ctx)
}

func (v *AppValidationService) AddApp(ctx context.Context, app models.App) error {
	// name, url, icon and description must all be non-empty
	if err := v.validator.Validate(ctx, app); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppData, err)
	}

	return v.inner.AddApp(ctx, app)
}

func (v *AppValidationService) DeleteApp(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, models.DeleteAppRequest{Name: name}); err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyAppName, err)
	}

	return v.inner.DeleteApp(ctx, name)
}

func (v *AppValidationService) Wrap(wrapped AppService) AppService {
	v.inner = wrapped
	return v
}
