package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
)

func geocodeHandler(calls *int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		json.NewEncoder(w).Encode(upstream.GeocodeResult{
			Success:   true,
			Latitude:  12.97,
			Longitude: 77.59,
			Accuracy:  models.AccuracyExact,
		})
	})
}

func newGeocodeService(t *testing.T, handler http.Handler) InterfaceGeocodeService {
	t.Helper()
	client := newTestUpstream(t, handler)
	svc := NewGeocodeService(client, &config.Config{GeocodeDebounce: 30 * time.Millisecond})
	t.Cleanup(svc.Shutdown)
	return svc
}

func fullAddress() models.AddressFields {
	return models.AddressFields{Street: "12 Residency Road", City: "Bengaluru", Country: "India"}
}

func TestUpdateAddressGeocodesAfterQuiescence(t *testing.T) {
	var calls int32
	svc := newGeocodeService(t, geocodeHandler(&calls))

	svc.UpdateAddress("form1", fullAddress())

	require.Eventually(t, func() bool {
		return svc.Position("form1").Position.Latitude == 12.97
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Equal(t, models.AccuracyExact, svc.Position("form1").Position.Accuracy)
}

func TestShortAddressNeverReachesUpstream(t *testing.T) {
	var calls int32
	svc := newGeocodeService(t, geocodeHandler(&calls))

	svc.UpdateAddress("form1", models.AddressFields{City: "Goa"})

	time.Sleep(120 * time.Millisecond)
	require.Zero(t, atomic.LoadInt32(&calls))
	require.Equal(t, models.AccuracyApproximate, svc.Position("form1").Position.Accuracy)
}

func TestRapidEditsCoalesceToOneGeocode(t *testing.T) {
	var calls int32
	svc := newGeocodeService(t, geocodeHandler(&calls))

	address := fullAddress()
	for i := 0; i < 4; i++ {
		svc.UpdateAddress("form1", address)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestManualPositionSuppressesAutoGeocode(t *testing.T) {
	var calls int32
	svc := newGeocodeService(t, geocodeHandler(&calls))

	state := svc.MarkManualPosition("form1", 19.07, 72.87)
	require.True(t, state.Position.IsManuallyPositioned)
	require.Equal(t, models.AccuracyExact, state.Position.Accuracy)

	// address edits while the override is set never schedule a lookup
	svc.UpdateAddress("form1", fullAddress())
	time.Sleep(120 * time.Millisecond)
	require.Zero(t, atomic.LoadInt32(&calls))
	require.Equal(t, 19.07, svc.Position("form1").Position.Latitude)
}

func TestResetToAddressClearsOverrideAndGeocodes(t *testing.T) {
	var calls int32
	svc := newGeocodeService(t, geocodeHandler(&calls))

	svc.MarkManualPosition("form1", 19.07, 72.87)
	svc.UpdateAddress("form1", fullAddress())

	state, err := svc.ResetToAddress(context.Background(), "form1")
	require.NoError(t, err)
	require.False(t, state.Position.IsManuallyPositioned)
	require.Equal(t, 12.97, state.Position.Latitude)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGeocodeFailureKeepsPositionAndRecordsError(t *testing.T) {
	var calls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(upstream.GeocodeResult{Success: false})
	})
	svc := newGeocodeService(t, handler)

	svc.UpdateAddress("form1", fullAddress())

	require.Eventually(t, func() bool {
		return svc.Position("form1").LastError != ""
	}, time.Second, 10*time.Millisecond)
	position := svc.Position("form1")
	require.Zero(t, position.Position.Latitude)
	require.Equal(t, models.AccuracyApproximate, position.Position.Accuracy)
}
