// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to the dashboard server.
//
// [DashboardAdapter] hides the HTTP API behind plain method calls. Error
// values defined in errors.go are mapped from HTTP status codes and the
// response envelope, so callers can use [errors.Is] (e.g. [ErrNotFound] for
// a delete that matched nothing, [ErrAdminDisabled] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/app-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dashboard_adapter_mock.go -package=mock

// DashboardAdapter defines communication with the dashboard server.
type DashboardAdapter interface {
	// SetToken stores the admin session token attached to subsequent
	// mutating requests.
	SetToken(token string)

	// Token returns the stored session token, or "" if none is set.
	Token() string

	// ListApps fetches every dashboard record.
	ListApps(ctx context.Context) ([]models.App, error)

	// AddApp creates a record. password may be empty when a session token
	// is set.
	AddApp(ctx context.Context, app models.App, password string) error

	// DeleteApp removes one record named name. Returns [ErrNotFound]
	// (wrapped) when nothing matched.
	DeleteApp(ctx context.Context, name, password string) error

	// CreateSession exchanges the admin password for a session token and
	// stores it via SetToken.
	CreateSession(ctx context.Context, password string) (models.Token, error)

	// GetServerVersion returns the version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
