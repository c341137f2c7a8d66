package validators

import (
	"context"

	"github.com/MKhiriev/app-dashboard/models"
)

// AppValidator implements the Validator interface for dashboard records
// and delete requests.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments
// (the models.Field* constants).
type AppValidator struct {
}

// NewAppValidator constructs a new AppValidator and returns it as the
// Validator interface.
func NewAppValidator() Validator {
	return &AppValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.App / *models.App: all four known fields must be non-empty
//   - models.DeleteAppRequest / *models.DeleteAppRequest: name must be non-empty
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *AppValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.App:
		return v.validateApp(ctx, value, fields...)
	case *models.App:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateApp(ctx, *value, fields...)
	case models.DeleteAppRequest:
		return v.validateDeleteRequest(ctx, value, fields...)
	case *models.DeleteAppRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDeleteRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AppValidator) validateApp(ctx context.Context, app models.App, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldName, models.FieldURL, models.FieldIcon, models.FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case models.FieldName:
			if app.Name == "" {
				return ErrEmptyName
			}
		case models.FieldURL:
			if app.URL == "" {
				return ErrEmptyURL
			}
		case models.FieldIcon:
			if app.Icon == "" {
				return ErrEmptyIcon
			}
		case models.FieldDescription:
			if app.Description == "" {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AppValidator) validateDeleteRequest(ctx context.Context, request models.DeleteAppRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldName}
	}

	for _, f := range fields {
		switch f {
		case models.FieldName:
			if request.Name == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
