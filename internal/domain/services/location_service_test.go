package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pms-app-service/internal/infrastructure/upstream"
)

// memoryOptionCache is an in-memory stand-in for the Redis option cache
type memoryOptionCache struct {
	options map[string][]upstream.LocationOption
}

func newMemoryOptionCache() *memoryOptionCache {
	return &memoryOptionCache{options: make(map[string][]upstream.LocationOption)}
}

func (c *memoryOptionCache) Set(key string, value interface{}, _ time.Duration) error { return nil }
func (c *memoryOptionCache) Get(key string, dest interface{}) error                   { return nil }
func (c *memoryOptionCache) Delete(key string) error                                  { return nil }

func (c *memoryOptionCache) CacheOptions(key string, options []upstream.LocationOption, _ time.Duration) error {
	c.options[key] = options
	return nil
}

func (c *memoryOptionCache) GetOptions(key string) ([]upstream.LocationOption, error) {
	return c.options[key], nil
}

func locationHandler(calls *int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		switch r.URL.Path {
		case "/api/location/countries":
			json.NewEncoder(w).Encode([]upstream.LocationOption{{Code: "IN", Name: "India"}, {Code: "US", Name: "United States"}})
		case "/api/location/states":
			json.NewEncoder(w).Encode([]upstream.LocationOption{{Code: "KA", Name: "Karnataka"}})
		case "/api/location/cities":
			json.NewEncoder(w).Encode([]upstream.LocationOption{{Name: "Bengaluru"}})
		default:
			http.NotFound(w, r)
		}
	})
}

func TestSelectCountryLoadsStatesAndClearsDownstream(t *testing.T) {
	var calls int32
	client := newTestUpstream(t, locationHandler(&calls))
	svc := NewLocationService(client, nil)

	chain, err := svc.SelectCountry(context.Background(), "form1", "IN")
	require.NoError(t, err)
	require.Equal(t, "IN", chain.Country)
	require.Len(t, chain.States, 1)

	chain, err = svc.SelectState(context.Background(), "form1", "KA")
	require.NoError(t, err)
	chain = svc.SelectCity("form1", "Bengaluru")
	require.Equal(t, "Bengaluru", chain.City)

	// a new country invalidates every downstream selection and list
	chain, err = svc.SelectCountry(context.Background(), "form1", "US")
	require.NoError(t, err)
	require.Equal(t, "US", chain.Country)
	require.Empty(t, chain.State)
	require.Empty(t, chain.City)
	require.Empty(t, chain.Cities)
}

func TestSelectStateClearsCityOnly(t *testing.T) {
	var calls int32
	client := newTestUpstream(t, locationHandler(&calls))
	svc := NewLocationService(client, nil)

	_, err := svc.SelectCountry(context.Background(), "form1", "IN")
	require.NoError(t, err)
	_, err = svc.SelectState(context.Background(), "form1", "KA")
	require.NoError(t, err)
	svc.SelectCity("form1", "Bengaluru")

	chain, err := svc.SelectState(context.Background(), "form1", "KA")
	require.NoError(t, err)
	require.Equal(t, "IN", chain.Country, "country selection survives a state change")
	require.Empty(t, chain.City)
	require.Len(t, chain.Cities, 1)
}

func TestSelectCountryEmptyClearsWithoutFetch(t *testing.T) {
	var calls int32
	client := newTestUpstream(t, locationHandler(&calls))
	svc := NewLocationService(client, nil)

	_, err := svc.SelectCountry(context.Background(), "form1", "IN")
	require.NoError(t, err)
	before := atomic.LoadInt32(&calls)

	chain, err := svc.SelectCountry(context.Background(), "form1", "")
	require.NoError(t, err)
	require.Empty(t, chain.Country)
	require.Empty(t, chain.States)
	require.Equal(t, before, atomic.LoadInt32(&calls), "clearing needs no lookup")
}

func TestStaleLookupResponseIsDiscarded(t *testing.T) {
	var calls int32
	client := newTestUpstream(t, locationHandler(&calls))
	svc := NewLocationService(client, nil).(*LocationService)

	chain, err := svc.SelectCountry(context.Background(), "form1", "IN")
	require.NoError(t, err)
	staleEpoch := chain.Epoch

	// the user changes country before the first lookup would land
	_, err = svc.SelectCountry(context.Background(), "form1", "US")
	require.NoError(t, err)

	late := svc.applyStates("form1", staleEpoch, []upstream.LocationOption{{Code: "XX", Name: "Stale"}})
	require.Equal(t, "US", late.Country)
	for _, option := range late.States {
		require.NotEqual(t, "XX", option.Code, "a stale response never populates the new selection")
	}
}

func TestCountriesServedFromCacheAfterFirstFetch(t *testing.T) {
	var calls int32
	client := newTestUpstream(t, locationHandler(&calls))
	svc := NewLocationService(client, newMemoryOptionCache())

	first, err := svc.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.Countries(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls), "second read comes from the cache")
}

func TestResetDropsChainState(t *testing.T) {
	var calls int32
	client := newTestUpstream(t, locationHandler(&calls))
	svc := NewLocationService(client, nil)

	_, err := svc.SelectCountry(context.Background(), "form1", "IN")
	require.NoError(t, err)

	svc.Reset("form1")
	chain := svc.State("form1")
	require.Empty(t, chain.Country)
	require.Empty(t, chain.States)
}
