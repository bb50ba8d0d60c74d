package services

import (
	"context"
	"sync"
	"time"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
)

// minGeocodeAddressLen is the minimum joined-address length before a
// geocode call is issued
const minGeocodeAddressLen = 10

// PositionState is the map position of one form, with the failure note of
// the last geocode attempt for the notification banner
type PositionState struct {
	Position  models.GeoPosition `json:"position"`
	Zoom      int                `json:"zoom"`
	LastError string             `json:"lastError,omitempty"`
}

// InterfaceGeocodeService defines the geocoding side-effect interface
type InterfaceGeocodeService interface {
	UpdateAddress(formKey string, address models.AddressFields)
	MarkManualPosition(formKey string, latitude, longitude float64) *PositionState
	ResetToAddress(ctx context.Context, formKey string) (*PositionState, error)
	Position(formKey string) *PositionState
	Shutdown()
}

// GeocodeService watches address edits and derives map coordinates.
// Address changes are debounced; a manual marker drag sets a sticky
// override that suppresses auto-geocoding until explicitly reset.
type GeocodeService struct {
	Upstream *upstream.Client
	Debounce time.Duration

	mu      sync.Mutex
	entries map[string]*geocodeEntry
}

type geocodeEntry struct {
	address string
	manual  bool
	state   PositionState
	timer   *time.Timer
}

// NewGeocodeService creates a new geocode service
func NewGeocodeService(client *upstream.Client, cfg *config.Config) InterfaceGeocodeService {
	return &GeocodeService{
		Upstream: client,
		Debounce: cfg.GeocodeDebounce,
		entries:  make(map[string]*geocodeEntry),
	}
}

// 1 UpdateAddress records an address edit and schedules a debounced
// geocode. Nothing is scheduled while the manual override is set.
func (s *GeocodeService) UpdateAddress(formKey string, address models.AddressFields) {
	joined := address.Joined()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(formKey)
	entry.address = joined
	if entry.manual {
		return
	}

	if entry.timer != nil {
		entry.timer.Stop()
	}
	entry.timer = time.AfterFunc(s.Debounce, func() {
		s.geocode(context.Background(), formKey, joined)
	})
}

// 2 MarkManualPosition records a marker drag. The override is sticky:
// auto-geocoding stays suppressed until ResetToAddress.
func (s *GeocodeService) MarkManualPosition(formKey string, latitude, longitude float64) *PositionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(formKey)
	entry.manual = true
	if entry.timer != nil {
		entry.timer.Stop()
		entry.timer = nil
	}
	entry.state = PositionState{
		Position: models.GeoPosition{
			Latitude:             latitude,
			Longitude:            longitude,
			IsManuallyPositioned: true,
			Accuracy:             models.AccuracyExact,
		},
		Zoom: models.AccuracyExact.ZoomLevel(),
	}
	snapshot := entry.state
	return &snapshot
}

// 3 ResetToAddress clears the manual override and, when an address of
// sufficient length is present, geocodes it immediately
func (s *GeocodeService) ResetToAddress(ctx context.Context, formKey string) (*PositionState, error) {
	s.mu.Lock()
	entry := s.entry(formKey)
	entry.manual = false
	entry.state.Position.IsManuallyPositioned = false
	address := entry.address
	snapshot := entry.state
	s.mu.Unlock()

	if len(address) < minGeocodeAddressLen {
		return &snapshot, nil
	}

	result, err := s.Upstream.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	return s.apply(formKey, address, result), nil
}

// 4 Position returns the current position state of a form
func (s *GeocodeService) Position(formKey string) *PositionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.entry(formKey).state
	return &snapshot
}

// 5 Shutdown stops every pending debounce timer
func (s *GeocodeService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.entries {
		if entry.timer != nil {
			entry.timer.Stop()
			entry.timer = nil
		}
	}
}

// entry returns the watcher entry for a form key, caller holds the lock
func (s *GeocodeService) entry(formKey string) *geocodeEntry {
	entry, ok := s.entries[formKey]
	if !ok {
		entry = &geocodeEntry{
			state: PositionState{
				Position: models.GeoPosition{Accuracy: models.AccuracyApproximate},
				Zoom:     models.AccuracyApproximate.ZoomLevel(),
			},
		}
		s.entries[formKey] = entry
	}
	return entry
}

// geocode runs the debounced call. Addresses below the minimum length
// never reach the upstream; failures leave the position unchanged and are
// recorded for the notification banner.
func (s *GeocodeService) geocode(ctx context.Context, formKey, address string) {
	if len(address) < minGeocodeAddressLen {
		return
	}

	result, err := s.Upstream.Geocode(ctx, address)
	if err != nil {
		config.Warning("geocode failed for %q: %v", address, err)
		s.mu.Lock()
		s.entry(formKey).state.LastError = err.Error()
		s.mu.Unlock()
		return
	}
	s.apply(formKey, address, result)
}

// apply installs a geocode result unless the address has changed since or
// the user has taken manual control in the meantime
func (s *GeocodeService) apply(formKey, address string, result *upstream.GeocodeResult) *PositionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(formKey)
	if entry.manual || entry.address != address {
		snapshot := entry.state
		return &snapshot
	}

	entry.state = PositionState{
		Position: models.GeoPosition{
			Latitude:  result.Latitude,
			Longitude: result.Longitude,
			Accuracy:  result.Accuracy,
		},
		Zoom: result.Accuracy.ZoomLevel(),
	}
	snapshot := entry.state
	return &snapshot
}
