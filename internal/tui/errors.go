// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/app-dashboard/internal/adapter"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrAdminDisabled):
		return "Admin operations are disabled on the server"
	case errors.Is(err, adapter.ErrPasswordRequired):
		return "Admin password is required"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Wrong admin password or expired session"
	case errors.Is(err, adapter.ErrMissingFields):
		return "Name, URL, icon and description are required"
	case errors.Is(err, adapter.ErrNotFound):
		return "App not found"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
