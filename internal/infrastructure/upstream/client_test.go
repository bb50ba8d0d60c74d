package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pms-app-service/internal/infrastructure/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.Config{
		UpstreamBaseURL: server.URL,
		UpstreamToken:   "test-token",
		UpstreamTimeout: 5 * time.Second,
	})
	return client, server
}

func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"p1"}`))
	}))

	_, err := client.GetProperty(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", gotAuth)
}

func TestDoMaps404ToErrNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetGeneralSettings(context.Background(), "org1", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDoMaps409ToConflictError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"room has 2 active reservations"}`))
	}))

	err := client.DeleteRoom(context.Background(), "r1")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "room has 2 active reservations", conflict.Message)
}

func TestDoReportsStatusAndBodyOnFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))

	_, err := client.GetDashboardStats(context.Background(), "p1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 500")
	require.Contains(t, err.Error(), "boom")
}

func TestGeocodeRejectsUnsuccessfulResult(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))

	_, err := client.Geocode(context.Background(), "10 Main Street, Springfield")
	require.Error(t, err)
}

func TestPutObjectReportsStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("signature expired"))
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		UpstreamBaseURL: server.URL,
		UpstreamTimeout: 5 * time.Second,
	})

	err := client.PutObject(context.Background(), server.URL+"/bucket/key", "image/png", []byte("data"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 403")
	require.Contains(t, err.Error(), "signature expired")
}
