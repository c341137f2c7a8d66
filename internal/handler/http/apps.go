package http

import (
	"net/http"

	"github.com/MKhiriev/app-dashboard/internal/app"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/internal/utils"
	"github.com/MKhiriev/app-dashboard/models"
)

func (h *Handler) getApps(w http.ResponseWriter, r *http.Request) {
	apps, err := h.services.AppService.ListApps(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if apps == nil {
		apps = []models.App{}
	}

	if _, err := utils.WriteJSON(w, apps, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing apps")
	}
}

// addApp stores the posted record. Order of checks: body, credentials,
// required fields.
func (h *Handler) addApp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.AddAppRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AdminService.Authorize(ctx, bearerToken(r), request.AdminPassword); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AppService.AddApp(ctx, request.App); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, models.Succeeded(app.MsgAppAdded))
}

func (h *Handler) deleteApp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.DeleteAppRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AdminService.Authorize(ctx, bearerToken(r), request.AdminPassword); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AppService.DeleteApp(ctx, request.Name); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, models.Succeeded(app.MsgAppDeleted))
}

// bearerToken returns the session token of the request, or "" when the
// Authorization header is absent or not a bearer credential.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("ignoring Authorization header")
		return ""
	}

	return token
}
