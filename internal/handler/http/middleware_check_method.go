// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/app-dashboard/internal/app"
	"github.com/MKhiriev/app-dashboard/internal/utils"
	"github.com/MKhiriev/app-dashboard/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches but the method does not. This handler
// answers 404 instead, with the usual JSON envelope, so that a route's
// existence is not revealed to callers using the wrong method. Requests whose
// method is in fact registered for the exact path are passed back to the
// router.
//
// Only exact patterns are compared; wildcard routes such as /static/* always
// answer 404 here.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteJSON(w, models.Failed(app.MsgNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
