package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aryamangoenka/User-Management-System/pkg/identitysdk"

	"github.com/stretchr/testify/require"
)

func TestLivez(t *testing.T) {
	srv := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health identitysdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)
	require.NotEmpty(t, health.Uptime)
	require.Nil(t, health.Checks)
}

func TestReadyz(t *testing.T) {
	srv := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health identitysdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}

func TestReadyz_DegradedAfterClose(t *testing.T) {
	srv := newTestServer(t, true)
	require.NoError(t, srv.Store.Close())

	resp, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var health identitysdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "degraded", health.Status)
	require.NotEqual(t, "ok", health.Checks.Database)
}
