// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Response is the JSON envelope returned by every mutating endpoint and by
// every error path of the API.
type Response struct {
	// Success reports whether the operation was carried out.
	Success bool `json:"success"`

	// Message is a human-readable confirmation, set on success.
	Message string `json:"message,omitempty"`

	// Error is a human-readable failure reason, set when Success is false.
	Error string `json:"error,omitempty"`

	// Token carries a freshly issued admin session token (POST /api/session).
	Token string `json:"token,omitempty"`

	// ExpiresAt is the expiry of Token.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Succeeded builds a successful Response with the given message.
func Succeeded(message string) Response {
	return Response{Success: true, Message: message}
}

// Failed builds a failed Response with the given error text.
func Failed(errorText string) Response {
	return Response{Success: false, Error: errorText}
}
