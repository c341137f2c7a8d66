// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_UnmarshalJSON_KnownAndExtraFields(t *testing.T) {
	var app App
	err := json.Unmarshal([]byte(`{"name":"Grafana","url":"http://x/","icon":"chart","description":"metrics","tags":["ops"],"order":3}`), &app)
	require.NoError(t, err)

	assert.Equal(t, "Grafana", app.Name)
	assert.Equal(t, "http://x/", app.URL)
	assert.Equal(t, "chart", app.Icon)
	assert.Equal(t, "metrics", app.Description)
	require.Len(t, app.Extra, 2)
	assert.JSONEq(t, `["ops"]`, string(app.Extra["tags"]))
	assert.JSONEq(t, `3`, string(app.Extra["order"]))
}

func TestApp_UnmarshalJSON_NullKnownFieldIsEmpty(t *testing.T) {
	var app App
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"url":"u"}`), &app))

	assert.Empty(t, app.Name)
	assert.Equal(t, "u", app.URL)
	assert.Nil(t, app.Extra)
}

func TestApp_UnmarshalJSON_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"non-string name", `{"name":42}`},
		{"object description", `{"description":{"a":1}}`},
		{"array payload", `["a"]`},
		{"null payload", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var app App
			err := json.Unmarshal([]byte(tt.payload), &app)
			require.Error(t, err)
		})
	}
}

func TestApp_UnmarshalJSON_NonStringFieldIsMalformed(t *testing.T) {
	var app App
	err := json.Unmarshal([]byte(`{"url":true}`), &app)

	assert.True(t, errors.Is(err, ErrMalformedApp))
}

func TestApp_MarshalJSON_FlatDocument(t *testing.T) {
	app := App{
		Name:        "Grafana",
		URL:         "http://x/",
		Icon:        "chart",
		Description: "metrics",
		Extra:       map[string]json.RawMessage{"team": json.RawMessage(`"infra"`)},
	}

	data, err := json.Marshal(app)
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Grafana","url":"http://x/","icon":"chart","description":"metrics","team":"infra"}`, string(data))
}

func TestApp_MarshalJSON_KnownFieldsWinOverExtra(t *testing.T) {
	app := App{
		Name:  "real",
		Extra: map[string]json.RawMessage{"name": json.RawMessage(`"shadow"`)},
	}

	data, err := json.Marshal(app)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "real", decoded["name"])
}

func TestAddAppRequest_ExtractsAdminPassword(t *testing.T) {
	var req AddAppRequest
	err := json.Unmarshal([]byte(`{"name":"n","url":"u","icon":"i","description":"d","admin_password":"secret"}`), &req)
	require.NoError(t, err)

	require.NotNil(t, req.AdminPassword)
	assert.Equal(t, "secret", *req.AdminPassword)
	assert.Nil(t, req.App.Extra, "admin_password must not stay in the record")
}

func TestAddAppRequest_KeepsOtherExtraFields(t *testing.T) {
	var req AddAppRequest
	err := json.Unmarshal([]byte(`{"name":"n","admin_password":"secret","color":"red"}`), &req)
	require.NoError(t, err)

	assert.NotContains(t, req.App.Extra, FieldAdminPassword)
	assert.Contains(t, req.App.Extra, "color")
}

func TestAddAppRequest_PasswordVariants(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *string
	}{
		{"absent", `{"name":"n"}`, nil},
		{"null", `{"admin_password":null}`, nil},
		{"empty string", `{"admin_password":""}`, ptr("")},
		{"number", `{"admin_password":1234}`, ptr("1234")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req AddAppRequest
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &req))
			assert.Equal(t, tt.want, req.AdminPassword)
		})
	}
}

func TestAddAppRequest_MarshalJSON(t *testing.T) {
	app := App{
		Name:  "n",
		URL:   "u",
		Extra: map[string]json.RawMessage{"color": json.RawMessage(`"red"`)},
	}

	data, err := json.Marshal(AddAppRequest{App: app, AdminPassword: ptr("secret")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"n","url":"u","icon":"","description":"","color":"red","admin_password":"secret"}`, string(data))
	assert.NotContains(t, app.Extra, FieldAdminPassword, "caller's Extra must not be modified")

	data, err = json.Marshal(AddAppRequest{App: app})
	require.NoError(t, err)
	assert.NotContains(t, string(data), FieldAdminPassword)
}

func TestDeleteAppRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		wantName     string
		wantPassword *string
		wantErr      bool
	}{
		{"full", `{"name":"n","admin_password":"pw"}`, "n", ptr("pw"), false},
		{"no password", `{"name":"n"}`, "n", nil, false},
		{"null name", `{"name":null,"admin_password":"pw"}`, "", ptr("pw"), false},
		{"numeric password", `{"name":"n","admin_password":42}`, "n", ptr("42"), false},
		{"numeric name", `{"name":42,"admin_password":"pw"}`, "", ptr("pw"), false},
		{"object name", `{"name":{"a":1}}`, "", nil, false},
		{"array", `[]`, "", nil, true},
		{"null", `null`, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req DeleteAppRequest
			err := json.Unmarshal([]byte(tt.payload), &req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, req.Name)
			assert.Equal(t, tt.wantPassword, req.AdminPassword)
		})
	}
}

func TestSessionRequest_UnmarshalJSON(t *testing.T) {
	var req SessionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"admin_password":"pw"}`), &req))
	require.NotNil(t, req.AdminPassword)
	assert.Equal(t, "pw", *req.AdminPassword)

	req = SessionRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.AdminPassword)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"pw"`), &req), ErrMalformedRequest)
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.0.0")
}

func ptr(s string) *string { return &s }
