package services

import (
	"encoding/json"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// memoryDraftStore records every write so tests can count them
type memoryDraftStore struct {
	mu       sync.Mutex
	writes   int
	payloads map[string][]byte
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{payloads: make(map[string][]byte)}
}

func (s *memoryDraftStore) Write(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.payloads[key] = payload
	return nil
}

func (s *memoryDraftStore) Read(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.payloads[key]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return payload, nil
}

func (s *memoryDraftStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.payloads, key)
	return nil
}

func (s *memoryDraftStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func TestSaveCoalescesRapidEditsIntoOneWrite(t *testing.T) {
	store := newMemoryDraftStore()
	svc := NewDraftServiceWithStore(store, 50*time.Millisecond)

	svc.Save("general_settings:org1", map[string]interface{}{"name": "S"})
	svc.Save("general_settings:org1", map[string]interface{}{"name": "Se"})
	svc.Save("general_settings:org1", map[string]interface{}{"name": "Seaside"})

	require.Equal(t, 0, store.writeCount(), "nothing persists inside the debounce window")

	require.Eventually(t, func() bool {
		return store.writeCount() == 1
	}, time.Second, 10*time.Millisecond)

	values, err := svc.Load("general_settings:org1")
	require.NoError(t, err)
	require.Equal(t, "Seaside", values["name"], "only the last edit survives")
}

func TestSaveResetsDebounceOnEachEdit(t *testing.T) {
	store := newMemoryDraftStore()
	svc := NewDraftServiceWithStore(store, 60*time.Millisecond)

	svc.Save("k", map[string]interface{}{"v": 1})
	time.Sleep(40 * time.Millisecond)
	svc.Save("k", map[string]interface{}{"v": 2})
	time.Sleep(40 * time.Millisecond)

	// 80ms elapsed but the second save reset the timer
	require.Equal(t, 0, store.writeCount())

	require.Eventually(t, func() bool {
		return store.writeCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestFlushPersistsImmediately(t *testing.T) {
	store := newMemoryDraftStore()
	svc := NewDraftServiceWithStore(store, time.Hour)

	svc.Save("k", map[string]interface{}{"name": "Seaside"})
	require.NoError(t, svc.Flush("k"))
	require.Equal(t, 1, store.writeCount())

	// flushing a key with nothing pending is a no-op
	require.NoError(t, svc.Flush("k"))
	require.Equal(t, 1, store.writeCount())
}

func TestSaveDropsNonSerializableValues(t *testing.T) {
	store := newMemoryDraftStore()
	svc := NewDraftServiceWithStore(store, time.Millisecond)

	svc.Save("k", map[string]interface{}{
		"name":  "Seaside",
		"photo": []byte{0x1, 0x2},
		"ch":    make(chan int),
	})
	require.NoError(t, svc.Flush("k"))

	values, err := svc.Load("k")
	require.NoError(t, err)
	require.Equal(t, "Seaside", values["name"])
	require.NotContains(t, values, "photo")
	require.NotContains(t, values, "ch")
}

func TestLoadDiscardsNonFiniteCoordinates(t *testing.T) {
	store := newMemoryDraftStore()
	svc := NewDraftServiceWithStore(store, time.Millisecond)

	payload, err := json.Marshal(map[string]interface{}{
		"latitude":  "not-a-number",
		"longitude": "77.59",
		"name":      "Seaside",
	})
	require.NoError(t, err)
	require.NoError(t, store.Write("k", payload))

	values, err := svc.Load("k")
	require.NoError(t, err)
	require.NotContains(t, values, "latitude")
	require.Equal(t, 77.59, values["longitude"], "numeric strings coerce back to numbers")
	require.Equal(t, "Seaside", values["name"])
}

func TestSaveDropsNaNBeforePersisting(t *testing.T) {
	store := newMemoryDraftStore()
	svc := NewDraftServiceWithStore(store, time.Millisecond)

	svc.Save("k", map[string]interface{}{
		"latitude":  math.NaN(),
		"longitude": 77.59,
	})
	require.NoError(t, svc.Flush("k"))

	values, err := svc.Load("k")
	require.NoError(t, err)
	require.NotContains(t, values, "latitude", "NaN cannot serialize and is dropped")
	require.Equal(t, 77.59, values["longitude"])
}

func TestClearStopsPendingWrite(t *testing.T) {
	store := newMemoryDraftStore()
	svc := NewDraftServiceWithStore(store, 30*time.Millisecond)

	svc.Save("k", map[string]interface{}{"v": 1})
	require.NoError(t, svc.Clear("k"))

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, 0, store.writeCount(), "cleared drafts never persist")

	_, err := svc.Load("k")
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestShutdownFlushesAllPending(t *testing.T) {
	store := newMemoryDraftStore()
	svc := NewDraftServiceWithStore(store, time.Hour)

	svc.Save("a", map[string]interface{}{"v": 1})
	svc.Save("b", map[string]interface{}{"v": 2})
	svc.Shutdown()

	require.Equal(t, 2, store.writeCount())
}
