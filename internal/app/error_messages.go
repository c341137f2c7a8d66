// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the dashboard server
// handlers and the terminal client.
//
// Msg* constants are written into the "error" and "message" fields of the
// JSON envelope. The client matches on them to tell apart errors that share
// a status code, so the wording must stay in one place.
package app

const (
	// MsgInvalidJSON is returned when a request body is not a JSON object or
	// a known field carries a non-string value.
	MsgInvalidJSON = "Invalid JSON"

	// MsgMissingRequiredFields is returned when name, url, icon or
	// description is absent or empty on create.
	MsgMissingRequiredFields = "Missing required fields"

	// MsgMissingName is returned when a delete request has no name.
	MsgMissingName = "Missing 'name' field"

	// MsgAppNotFound is returned when a delete matched no record.
	MsgAppNotFound = "App not found"

	// MsgAdminDisabled is returned for every admin operation while no admin
	// password is configured.
	MsgAdminDisabled = "Admin operations are disabled: admin password not configured on server"

	// MsgMissingAdminPassword is returned when neither a password nor a
	// valid session token came with an admin operation.
	MsgMissingAdminPassword = "Missing admin password"

	// MsgUnauthorized is returned when the admin password does not match.
	MsgUnauthorized = "Unauthorized"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	MsgAppAdded        = "App added successfully"
	MsgAppDeleted      = "App deleted successfully"
	MsgSessionCreated  = "Session created"
	MsgNotFound        = "Not found"
	MsgTimeoutExceeded = "Request timeout exceeded"
)
