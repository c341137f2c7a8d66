// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON keys of the known App fields.
const (
	FieldName          = "name"
	FieldURL           = "url"
	FieldIcon          = "icon"
	FieldDescription   = "description"
	FieldAdminPassword = "admin_password"
)

// App is a single dashboard entry.
//
// The four known fields are typed; every other key of the incoming JSON
// object is kept verbatim in Extra and written back next to them on encode,
// so records behave like loosely-schematized documents.
type App struct {
	// Name is the application-level key used by delete.
	Name string

	// URL is the link the dashboard tile points to.
	URL string

	// Icon is an icon URL or an icon class name.
	Icon string

	// Description is a short free-form text shown under the name.
	Description string

	// Extra holds additional fields in their original JSON form.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON decodes a JSON object into the App. Known fields must be
// JSON strings or null; any other key lands in Extra.
func (a *App) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("%w: app must be a JSON object", ErrMalformedApp)
	}

	known := map[string]*string{
		FieldName:        &a.Name,
		FieldURL:         &a.URL,
		FieldIcon:        &a.Icon,
		FieldDescription: &a.Description,
	}

	for key, dst := range known {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		delete(fields, key)

		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("%w: field %q must be a string", ErrMalformedApp, key)
		}
	}

	if len(fields) > 0 {
		a.Extra = fields
	}

	return nil
}

// MarshalJSON encodes the App as a flat JSON object: Extra first, then the
// known fields on top of it.
func (a App) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Extra)+4)
	for key, value := range a.Extra {
		out[key] = value
	}

	out[FieldName] = a.Name
	out[FieldURL] = a.URL
	out[FieldIcon] = a.Icon
	out[FieldDescription] = a.Description

	return json.Marshal(out)
}

// AddAppRequest is the body of POST /add_new_app: an App plus the admin
// credential, which is split off and never becomes part of the record.
type AddAppRequest struct {
	App App

	// AdminPassword is nil when the body carried no admin_password key.
	AdminPassword *string
}

// UnmarshalJSON decodes the record and extracts admin_password from it.
func (r *AddAppRequest) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.App); err != nil {
		return err
	}

	raw, ok := r.App.Extra[FieldAdminPassword]
	if !ok {
		return nil
	}
	delete(r.App.Extra, FieldAdminPassword)
	if len(r.App.Extra) == 0 {
		r.App.Extra = nil
	}

	r.AdminPassword = decodePassword(raw)
	return nil
}

// MarshalJSON encodes the record with admin_password merged in, the way the
// dashboard page posts it.
func (r AddAppRequest) MarshalJSON() ([]byte, error) {
	app := r.App
	if r.AdminPassword != nil {
		extra := make(map[string]json.RawMessage, len(app.Extra)+1)
		for key, value := range app.Extra {
			extra[key] = value
		}

		password, err := json.Marshal(*r.AdminPassword)
		if err != nil {
			return nil, err
		}
		extra[FieldAdminPassword] = password
		app.Extra = extra
	}

	return json.Marshal(app)
}

// DeleteAppRequest is the body of POST /delete_app.
type DeleteAppRequest struct {
	Name          string  `json:"name"`
	AdminPassword *string `json:"admin_password,omitempty"`
}

// UnmarshalJSON decodes the request. A name that is not a JSON string is
// left empty, so it fails the name check after the credentials are checked;
// admin_password follows the same rules as in AddAppRequest.
func (r *DeleteAppRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name          json.RawMessage `json:"name"`
		AdminPassword json.RawMessage `json:"admin_password"`
	}
	if err := decodeObject(data, &raw); err != nil {
		return err
	}

	r.Name = ""
	if len(raw.Name) > 0 {
		var name string
		if err := json.Unmarshal(raw.Name, &name); err == nil {
			r.Name = name
		}
	}
	r.AdminPassword = decodePassword(raw.AdminPassword)

	return nil
}

// SessionRequest is the body of POST /api/session.
type SessionRequest struct {
	AdminPassword *string `json:"admin_password,omitempty"`
}

// UnmarshalJSON decodes the request like DeleteAppRequest does.
func (r *SessionRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		AdminPassword json.RawMessage `json:"admin_password"`
	}
	if err := decodeObject(data, &raw); err != nil {
		return err
	}

	r.AdminPassword = decodePassword(raw.AdminPassword)
	return nil
}

// decodeObject unmarshals data into dst, refusing a top-level null.
func decodeObject(data []byte, dst any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: request must be a JSON object", ErrMalformedRequest)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}

	return nil
}

// decodePassword returns the password carried by raw. An absent key or a
// JSON null means "not provided"; a non-string value is kept as its raw text so that it is
// compared (and rejected) rather than silently dropped.
func decodePassword(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var password string
	if err := json.Unmarshal(trimmed, &password); err != nil {
		password = string(trimmed)
	}

	return &password
}
