// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/app-dashboard/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/get_apps", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("apps"))
	})
	router.Post("/add_new_app", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/delete_app", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET /get_apps passes through", http.MethodGet, "/get_apps", http.StatusOK},
		{"POST /add_new_app passes through", http.MethodPost, "/add_new_app", http.StatusOK},
		{"POST /delete_app passes through", http.MethodPost, "/delete_app", http.StatusOK},
		{"POST /get_apps is 404", http.MethodPost, "/get_apps", http.StatusNotFound},
		{"GET /add_new_app is 404", http.MethodGet, "/add_new_app", http.StatusNotFound},
		{"DELETE /delete_app is 404", http.MethodDelete, "/delete_app", http.StatusNotFound},
		{"PUT /add_new_app is 404", http.MethodPut, "/add_new_app", http.StatusNotFound},
		{"unknown path is 404", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_WritesEnvelope(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/delete_app", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"`+app.MsgNotFound+`"}`, rr.Body.String())
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/get_apps", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "apps", rr.Body.String())
}
