package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
)

func newTestUpstream(t *testing.T, handler http.Handler) *upstream.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return upstream.NewClient(&config.Config{
		UpstreamBaseURL: server.URL,
		UpstreamToken:   "test-token",
		UpstreamTimeout: 5 * time.Second,
	})
}

func testSession() models.SessionContext {
	return models.SessionContext{
		UserID:     "u1",
		OrgID:      "org1",
		PropertyID: "p1",
		Role:       models.RoleOrgAdmin,
	}
}

func TestLoadGeneralReturnsRemoteSettings(t *testing.T) {
	client := newTestUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Seaside Inn","timezone":"Asia/Kolkata","currency":"INR"}`))
	}))
	svc := NewSettingsService(client, NewDraftServiceWithStore(newMemoryDraftStore(), time.Millisecond), &NoopAuditService{})

	settings, err := svc.LoadGeneral(context.Background(), testSession(), ModeExisting)
	require.NoError(t, err)
	require.Equal(t, "Seaside Inn", settings.Name)
	require.Equal(t, "Asia/Kolkata", settings.Timezone)
}

func TestLoadGeneralFallsBackToDefaultsOn404(t *testing.T) {
	client := newTestUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	svc := NewSettingsService(client, NewDraftServiceWithStore(newMemoryDraftStore(), time.Millisecond), &NoopAuditService{})

	settings, err := svc.LoadGeneral(context.Background(), testSession(), ModeExisting)
	require.NoError(t, err, "missing settings are not an error")
	require.Equal(t, "UTC", settings.Timezone)
	require.Equal(t, "USD", settings.Currency)
	require.Empty(t, settings.Name)
}

func TestLoadGeneralNewModeSkipsFetch(t *testing.T) {
	var calls int32
	client := newTestUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"name":"Stale"}`))
	}))
	svc := NewSettingsService(client, NewDraftServiceWithStore(newMemoryDraftStore(), time.Millisecond), &NoopAuditService{})

	settings, err := svc.LoadGeneral(context.Background(), testSession(), ModeNewProperty)
	require.NoError(t, err)
	require.Equal(t, int32(0), atomic.LoadInt32(&calls), "new-property mode never fetches")
	require.Equal(t, "UTC", settings.Timezone)
}

func TestReconcileRemoteWinsOnlyBeforeInteraction(t *testing.T) {
	svc := &SettingsService{}
	current := &models.GeneralSettings{Name: "Typed By User"}
	remote := &models.GeneralSettings{Name: "Remote Truth"}

	// untouched form adopts remote data
	require.Equal(t, "Remote Truth", svc.Reconcile(current, remote, false).Name)

	// one interaction makes the form state sticky
	require.Equal(t, "Typed By User", svc.Reconcile(current, remote, true).Name)

	// nil remote keeps the current state either way
	require.Equal(t, "Typed By User", svc.Reconcile(current, nil, false).Name)
}

func TestSaveGeneralClearsDraft(t *testing.T) {
	client := newTestUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Seaside Inn"}`))
	}))
	store := newMemoryDraftStore()
	drafts := NewDraftServiceWithStore(store, time.Millisecond)
	svc := NewSettingsService(client, drafts, &NoopAuditService{})

	session := testSession()
	draftKey := session.FormKey(models.DraftKeyGeneralSettings)
	drafts.Save(draftKey, map[string]interface{}{"name": "Seasi"})
	require.NoError(t, drafts.Flush(draftKey))

	saved, err := svc.SaveGeneral(context.Background(), session, &models.GeneralSettings{Name: "Seaside Inn"})
	require.NoError(t, err)
	require.Equal(t, "Seaside Inn", saved.Name)

	_, err = drafts.Load(draftKey)
	require.ErrorIs(t, err, ErrDraftNotFound, "successful save discards the draft")
}

func TestSaveGeneralKeepsDraftOnFailure(t *testing.T) {
	client := newTestUpstream(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	store := newMemoryDraftStore()
	drafts := NewDraftServiceWithStore(store, time.Millisecond)
	svc := NewSettingsService(client, drafts, &NoopAuditService{})

	session := testSession()
	draftKey := session.FormKey(models.DraftKeyGeneralSettings)
	drafts.Save(draftKey, map[string]interface{}{"name": "Seasi"})
	require.NoError(t, drafts.Flush(draftKey))

	_, err := svc.SaveGeneral(context.Background(), session, &models.GeneralSettings{Name: "Seaside Inn"})
	require.Error(t, err)

	values, loadErr := drafts.Load(draftKey)
	require.NoError(t, loadErr, "failed saves keep the draft for recovery")
	require.Equal(t, "Seasi", values["name"])
}
