package http

import (
	"net/http"

	"github.com/MKhiriev/app-dashboard/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		withGZip,
		middleware.Timeout(h.requestTimeout),
	)

	// page shell and its assets
	router.Get("/", h.dashboard)
	router.Get("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))).ServeHTTP)

	// app registry
	router.Get("/get_apps", h.getApps)
	router.Post("/add_new_app", h.addApp)
	router.Post("/delete_app", h.deleteApp)

	router.Post("/api/session", h.createSession)
	router.Get("/api/version", h.getServerVersion)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
