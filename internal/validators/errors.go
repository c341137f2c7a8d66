package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyURL         = errors.New("url is required")
	ErrEmptyIcon        = errors.New("icon is required")
	ErrEmptyDescription = errors.New("description is required")
)
