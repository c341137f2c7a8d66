package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/app-dashboard/internal/app"
	"github.com/MKhiriev/app-dashboard/internal/service"
	"github.com/MKhiriev/app-dashboard/internal/store"
)

// The keys of both maps must not wrap one another: statusFromError and
// messageFromError take the first match in map order.
var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	service.ErrInvalidAppData:          http.StatusBadRequest,
	service.ErrEmptyAppName:            http.StatusBadRequest,
	service.ErrAdminDisabled:           http.StatusServiceUnavailable,
	service.ErrMissingAdminPassword:    http.StatusUnauthorized,
	service.ErrWrongAdminPassword:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrAppNotFound: http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON: app.MsgInvalidJSON,

	service.ErrInvalidAppData:          app.MsgMissingRequiredFields,
	service.ErrEmptyAppName:            app.MsgMissingName,
	service.ErrAdminDisabled:           app.MsgAdminDisabled,
	service.ErrMissingAdminPassword:    app.MsgMissingAdminPassword,
	service.ErrWrongAdminPassword:      app.MsgUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: app.MsgUnauthorized,

	store.ErrAppNotFound: app.MsgAppNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
