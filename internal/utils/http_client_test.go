package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_AsksForJSON(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient().R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "application/json", accept)
}

func TestNewHTTPClient_ClientsDoNotShareSettings(t *testing.T) {
	first := NewHTTPClient()
	second := NewHTTPClient()

	require.NotSame(t, first.Client, second.Client)

	first.SetHeader("Accept", "text/plain")
	assert.Equal(t, "application/json", second.Header.Get("Accept"))
}
