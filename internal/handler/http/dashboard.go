package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/web"
)

// dashboard renders the page shell. The page fetches /get_apps itself.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard := h.services.DashboardService.Dashboard(r.Context())

	var page bytes.Buffer
	if err := web.Templates.ExecuteTemplate(&page, web.IndexTemplate, dashboard); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering dashboard")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}
