package services

import (
	"context"
	"sync"
	"time"

	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
)

const (
	countriesCacheTTL = 24 * time.Hour
	regionsCacheTTL   = time.Hour
)

// ChainState is the dependent selection state of one location form:
// country -> state -> city, each level's option list depending on the
// previous level's selection
type ChainState struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`

	States []upstream.LocationOption `json:"states"`
	Cities []upstream.LocationOption `json:"cities"`

	Epoch uint64 `json:"epoch"`
}

// InterfaceLocationService defines the dependent lookup chain interface
type InterfaceLocationService interface {
	Countries(ctx context.Context) ([]upstream.LocationOption, error)
	SelectCountry(ctx context.Context, formKey, countryCode string) (*ChainState, error)
	SelectState(ctx context.Context, formKey, stateCode string) (*ChainState, error)
	SelectCity(formKey, city string) *ChainState
	State(formKey string) *ChainState
	Reset(formKey string)
}

// LocationService maintains per-form dependent selection chains. Each
// selection bumps the chain's epoch; a lookup response carrying a stale
// epoch is discarded instead of populating the current selection.
type LocationService struct {
	Upstream *upstream.Client
	Cache    InterfaceRedisService

	mu     sync.Mutex
	chains map[string]*ChainState
}

// NewLocationService creates a new location lookup service
func NewLocationService(client *upstream.Client, cache InterfaceRedisService) InterfaceLocationService {
	return &LocationService{
		Upstream: client,
		Cache:    cache,
		chains:   make(map[string]*ChainState),
	}
}

// 1 Countries returns the country lookup list, cached for a day
func (s *LocationService) Countries(ctx context.Context) ([]upstream.LocationOption, error) {
	if options, err := s.cachedOptions("countries"); err == nil && options != nil {
		return options, nil
	}

	options, err := s.Upstream.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheOptions("countries", options, countriesCacheTTL)
	return options, nil
}

// 2 SelectCountry records a country selection: state and city selections
// and their option lists are cleared first, then states are fetched for
// the new country. An empty country clears everything without a fetch.
func (s *LocationService) SelectCountry(ctx context.Context, formKey, countryCode string) (*ChainState, error) {
	s.mu.Lock()
	chain := s.chain(formKey)
	chain.Epoch++
	epoch := chain.Epoch
	chain.Country = countryCode
	chain.State = ""
	chain.City = ""
	chain.States = nil
	chain.Cities = nil
	snapshot := *chain
	s.mu.Unlock()

	if countryCode == "" {
		return &snapshot, nil
	}

	states, err := s.statesFor(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	return s.applyStates(formKey, epoch, states), nil
}

// 3 SelectState records a state selection: the city selection and list
// are cleared first, then cities are fetched for the new state
func (s *LocationService) SelectState(ctx context.Context, formKey, stateCode string) (*ChainState, error) {
	s.mu.Lock()
	chain := s.chain(formKey)
	chain.Epoch++
	epoch := chain.Epoch
	chain.State = stateCode
	chain.City = ""
	chain.Cities = nil
	snapshot := *chain
	s.mu.Unlock()

	if stateCode == "" {
		return &snapshot, nil
	}

	cities, err := s.citiesFor(ctx, stateCode)
	if err != nil {
		return nil, err
	}
	return s.applyCities(formKey, epoch, cities), nil
}

// 4 SelectCity records a city selection; no downstream list exists
func (s *LocationService) SelectCity(formKey, city string) *ChainState {
	s.mu.Lock()
	defer s.mu.Unlock()
	chain := s.chain(formKey)
	chain.Epoch++
	chain.City = city
	snapshot := *chain
	return &snapshot
}

// 5 State returns the current chain state of a form
func (s *LocationService) State(formKey string) *ChainState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := *s.chain(formKey)
	return &snapshot
}

// 6 Reset drops the chain state of a form
func (s *LocationService) Reset(formKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chains, formKey)
}

// chain returns the entry for a form key, caller holds the lock
func (s *LocationService) chain(formKey string) *ChainState {
	chain, ok := s.chains[formKey]
	if !ok {
		chain = &ChainState{}
		s.chains[formKey] = chain
	}
	return chain
}

// applyStates installs a fetched state list unless the chain has moved on
func (s *LocationService) applyStates(formKey string, epoch uint64, states []upstream.LocationOption) *ChainState {
	s.mu.Lock()
	defer s.mu.Unlock()
	chain := s.chain(formKey)
	if chain.Epoch == epoch {
		chain.States = states
	}
	snapshot := *chain
	return &snapshot
}

// applyCities installs a fetched city list unless the chain has moved on
func (s *LocationService) applyCities(formKey string, epoch uint64, cities []upstream.LocationOption) *ChainState {
	s.mu.Lock()
	defer s.mu.Unlock()
	chain := s.chain(formKey)
	if chain.Epoch == epoch {
		chain.Cities = cities
	}
	snapshot := *chain
	return &snapshot
}

func (s *LocationService) statesFor(ctx context.Context, countryCode string) ([]upstream.LocationOption, error) {
	cacheKey := "states:" + countryCode
	if options, err := s.cachedOptions(cacheKey); err == nil && options != nil {
		return options, nil
	}

	options, err := s.Upstream.ListStates(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	s.cacheOptions(cacheKey, options, regionsCacheTTL)
	return options, nil
}

func (s *LocationService) citiesFor(ctx context.Context, stateCode string) ([]upstream.LocationOption, error) {
	cacheKey := "cities:" + stateCode
	if options, err := s.cachedOptions(cacheKey); err == nil && options != nil {
		return options, nil
	}

	options, err := s.Upstream.ListCities(ctx, stateCode)
	if err != nil {
		return nil, err
	}
	s.cacheOptions(cacheKey, options, regionsCacheTTL)
	return options, nil
}

func (s *LocationService) cachedOptions(key string) ([]upstream.LocationOption, error) {
	if s.Cache == nil {
		return nil, nil
	}
	return s.Cache.GetOptions(key)
}

func (s *LocationService) cacheOptions(key string, options []upstream.LocationOption, ttl time.Duration) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.CacheOptions(key, options, ttl); err != nil {
		config.Warning("failed to cache %s options: %v", key, err)
	}
}
