package services

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
)

// ErrDraftNotFound is returned when no snapshot exists under a storage key
var ErrDraftNotFound = errors.New("no draft under this key")

// coordinateFields are coerced back to finite numbers on load; malformed
// or non-finite values are discarded rather than applied
var coordinateFields = map[string]bool{
	"latitude":  true,
	"longitude": true,
}

// InterfaceDraftService defines the draft store interface
type InterfaceDraftService interface {
	Save(key string, values map[string]interface{})
	Flush(key string) error
	Load(key string) (map[string]interface{}, error)
	Clear(key string) error
	Shutdown()
}

// DraftStore persists serialized draft snapshots under a storage key
type DraftStore interface {
	Write(key string, payload []byte) error
	Read(key string) ([]byte, error)
	Delete(key string) error
}

// DraftService coalesces rapid form edits into one persisted snapshot per
// debounce window: each Save resets the single pending timer for its key,
// so only the last value of each field survives
type DraftService struct {
	Store    DraftStore
	Debounce time.Duration

	mu      sync.Mutex
	pending map[string]*pendingDraft
}

type pendingDraft struct {
	values map[string]interface{}
	timer  *time.Timer
}

// NewDraftService creates a draft service over the gateway database
func NewDraftService(db *gorm.DB, cfg *config.Config) InterfaceDraftService {
	return NewDraftServiceWithStore(&gormDraftStore{db: db}, cfg.DraftDebounce)
}

// NewDraftServiceWithStore creates a draft service over an explicit store
func NewDraftServiceWithStore(store DraftStore, debounce time.Duration) InterfaceDraftService {
	return &DraftService{
		Store:    store,
		Debounce: debounce,
		pending:  make(map[string]*pendingDraft),
	}
}

// 1 Save schedules a debounced snapshot write. Fields holding
// non-serializable values (file handles, raw bytes) are skipped.
func (s *DraftService) Save(key string, values map[string]interface{}) {
	sanitized := sanitizeDraftValues(values)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[key]
	if !ok {
		entry = &pendingDraft{}
		s.pending[key] = entry
	}
	entry.values = sanitized

	if entry.timer != nil {
		entry.timer.Stop()
	}
	entry.timer = time.AfterFunc(s.Debounce, func() {
		if err := s.Flush(key); err != nil {
			config.Warning("failed to persist draft %s: %v", key, err)
		}
	})
}

// 2 Flush persists the pending snapshot for a key immediately
func (s *DraftService) Flush(key string) error {
	s.mu.Lock()
	entry, ok := s.pending[key]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}
	values := entry.values
	delete(s.pending, key)
	s.mu.Unlock()

	payload, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return s.Store.Write(key, payload)
}

// 3 Load returns the last persisted snapshot, with coordinate fields
// defensively coerced to finite numbers
func (s *DraftService) Load(key string) (map[string]interface{}, error) {
	payload, err := s.Store.Read(key)
	if err != nil {
		return nil, err
	}

	values := make(map[string]interface{})
	if err := json.Unmarshal(payload, &values); err != nil {
		return nil, err
	}

	for field := range coordinateFields {
		raw, ok := values[field]
		if !ok {
			continue
		}
		if coerced, ok := coerceFinite(raw); ok {
			values[field] = coerced
		} else {
			delete(values, field)
		}
	}
	return values, nil
}

// 4 Clear removes the snapshot and any pending write, called after a
// successful submit
func (s *DraftService) Clear(key string) error {
	s.mu.Lock()
	if entry, ok := s.pending[key]; ok {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		delete(s.pending, key)
	}
	s.mu.Unlock()

	return s.Store.Delete(key)
}

// 5 Shutdown flushes every pending snapshot
func (s *DraftService) Shutdown() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.pending))
	for key := range s.pending {
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		if err := s.Flush(key); err != nil {
			config.Warning("failed to flush draft %s on shutdown: %v", key, err)
		}
	}
}

// sanitizeDraftValues drops values a JSON snapshot cannot carry
func sanitizeDraftValues(values map[string]interface{}) map[string]interface{} {
	sanitized := make(map[string]interface{}, len(values))
	for field, value := range values {
		switch value.(type) {
		case []byte:
			continue
		}
		if _, err := json.Marshal(value); err != nil {
			continue
		}
		sanitized[field] = value
	}
	return sanitized
}

// coerceFinite converts a stored value to a finite float64
func coerceFinite(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// gormDraftStore persists drafts in the gateway database
type gormDraftStore struct {
	db *gorm.DB
}

func (s *gormDraftStore) Write(key string, payload []byte) error {
	var draft models.FormDraft
	err := s.db.Where("storage_key = ?", key).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.FormDraft{StorageKey: key, Values: payload}).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&draft).Update("values", payload).Error
}

func (s *gormDraftStore) Read(key string) ([]byte, error) {
	var draft models.FormDraft
	err := s.db.Where("storage_key = ?", key).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	return draft.Values, nil
}

func (s *gormDraftStore) Delete(key string) error {
	return s.db.Where("storage_key = ?", key).Delete(&models.FormDraft{}).Error
}
