package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"all interfaces", NetAddress{Host: "0.0.0.0", Port: 2390}, "0.0.0.0:2390"},
		{"only port no host", NetAddress{Port: 8080}, ":8080"},
		{"ipv6", NetAddress{Host: "::1", Port: 2390}, "[::1]:2390"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{"localhost", "localhost:2390", false, NetAddress{Host: "localhost", Port: 2390}},
		{"ip", "0.0.0.0:2390", false, NetAddress{Host: "0.0.0.0", Port: 2390}},
		{"empty host", ":2390", false, NetAddress{Port: 2390}},
		{"no port", "localhost", true, NetAddress{}},
		{"port not a number", "localhost:abc", true, NetAddress{}},
		{"port zero", "localhost:0", true, NetAddress{}},
		{"port too big", "localhost:70000", true, NetAddress{}},
		{"hostname", "example.com:80", true, NetAddress{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:2391",
		"-d", "sqlite://apps.db",
		"-c", "/etc/dashboard.json",
		"-title", "Homelab",
		"-admin-password", "pw",
		"-secret-key", "sk",
		"-token-issuer", "iss",
		"-token-duration", "1h",
		"-app-version", "1.2.3",
		"-request-timeout", "15s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:2391", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite://apps.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/dashboard.json", cfg.JSONFilePath)
	assert.Equal(t, "Homelab", cfg.App.DashboardTitle)
	assert.Equal(t, "pw", cfg.App.AdminPassword)
	assert.Equal(t, "sk", cfg.App.SecretKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseFlags_NoArgsGivesZeroConfig(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "cfg.json"})
	require.NoError(t, err)

	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-nope"})

	assert.Error(t, err)
}
