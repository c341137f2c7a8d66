package http

import (
	"net/http"

	"github.com/MKhiriev/app-dashboard/internal/app"
	"github.com/MKhiriev/app-dashboard/models"
)

// createSession exchanges the admin password for a session token that
// later mutations may send as "Authorization: Bearer <token>".
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var request models.SessionRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AdminService.CreateSession(r.Context(), request.AdminPassword)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := models.Succeeded(app.MsgSessionCreated)
	response.Token = token.String()
	if token.ExpiresAt != nil {
		expiresAt := token.ExpiresAt.Time
		response.ExpiresAt = &expiresAt
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	writeSuccess(w, r, response)
}
