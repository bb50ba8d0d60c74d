package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"
	"pms-app-service/pkg/background"
)

// InterfaceDashboardService defines the aggregate dashboard interface
type InterfaceDashboardService interface {
	LoadEssential(ctx context.Context, propertyID string) (*models.DashboardSnapshot, error)
	SpawnBackground(propertyID string, tab models.ActivityType) *background.Task
	Refresh(ctx context.Context, propertyID string, tab models.ActivityType) (*models.DashboardSnapshot, error)
	Snapshot(propertyID string) (*models.DashboardSnapshot, bool)
	CancelBackground(propertyID string)
}

// DashboardService aggregates the dashboard data in two waves: an
// essential wave whose required results gate the page jointly, and a
// deferred background wave whose slices apply independently and tolerate
// failure
type DashboardService struct {
	Upstream        *upstream.Client
	BackgroundDelay time.Duration

	mu        sync.Mutex
	snapshots map[string]*models.DashboardSnapshot
	tasks     map[string]*background.Task
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(client *upstream.Client, cfg *config.Config) InterfaceDashboardService {
	return &DashboardService{
		Upstream:        client,
		BackgroundDelay: cfg.BackgroundFetchDelay,
		snapshots:       make(map[string]*models.DashboardSnapshot),
		tasks:           make(map[string]*background.Task),
	}
}

// 1 LoadEssential fans out the three essential requests in parallel.
// Property and stats are required: either failing fails the whole wave.
// Today's reservations failing is tolerated (logged, not surfaced). The
// snapshot is applied atomically only after the joined wait.
func (s *DashboardService) LoadEssential(ctx context.Context, propertyID string) (*models.DashboardSnapshot, error) {
	var (
		property     *models.Property
		stats        json.RawMessage
		reservations json.RawMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.Upstream.GetProperty(gctx, propertyID)
		if err != nil {
			return fmt.Errorf("property load failed: %w", err)
		}
		property = p
		return nil
	})
	g.Go(func() error {
		data, err := s.Upstream.GetDashboardStats(gctx, propertyID)
		if err != nil {
			return fmt.Errorf("stats load failed: %w", err)
		}
		stats = data
		return nil
	})
	g.Go(func() error {
		data, err := s.Upstream.GetDashboardReservations(gctx, propertyID, "today")
		if err != nil {
			config.Warning("today reservations load failed for %s: %v", propertyID, err)
			return nil
		}
		reservations = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &models.DashboardSnapshot{
		Property:          property,
		Stats:             stats,
		TodayReservations: reservations,
		RefreshedAt:       time.Now(),
	}

	s.mu.Lock()
	s.snapshots[propertyID] = snapshot
	s.mu.Unlock()

	copied := *snapshot
	return &copied, nil
}

// 2 SpawnBackground schedules the deferred wave: tomorrow's reservations
// and the activity feed for the selected tab. Each slice applies its own
// part of the snapshot as soon as it resolves and tolerates failure
// without blocking the page. A previously scheduled wave for the same
// property is cancelled first.
func (s *DashboardService) SpawnBackground(propertyID string, tab models.ActivityType) *background.Task {
	s.CancelBackground(propertyID)

	task := background.Spawn(context.Background(), s.BackgroundDelay, func(ctx context.Context) error {
		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			data, err := s.Upstream.GetDashboardReservations(ctx, propertyID, "tomorrow")
			if err != nil {
				config.Warning("tomorrow reservations load failed for %s: %v", propertyID, err)
				return
			}
			s.patch(propertyID, func(snapshot *models.DashboardSnapshot) {
				snapshot.TomorrowReservations = data
			})
		}()
		go func() {
			defer wg.Done()
			data, err := s.Upstream.GetDashboardActivities(ctx, propertyID, tab)
			if err != nil {
				config.Warning("activities load failed for %s: %v", propertyID, err)
				return
			}
			s.patch(propertyID, func(snapshot *models.DashboardSnapshot) {
				snapshot.Activities = data
				snapshot.ActivityTab = tab
			})
		}()

		wg.Wait()
		return nil
	})

	s.mu.Lock()
	s.tasks[propertyID] = task
	s.mu.Unlock()
	return task
}

// 3 Refresh repeats the essential wave and, unlike the automatic path,
// awaits the background wave too, so the refreshing indicator only clears
// once all data is current
func (s *DashboardService) Refresh(ctx context.Context, propertyID string, tab models.ActivityType) (*models.DashboardSnapshot, error) {
	if _, err := s.LoadEssential(ctx, propertyID); err != nil {
		return nil, err
	}

	task := s.SpawnBackground(propertyID, tab)
	if err := task.Wait(); err != nil && err != context.Canceled {
		config.Warning("background wave failed for %s: %v", propertyID, err)
	}

	snapshot, _ := s.Snapshot(propertyID)
	return snapshot, nil
}

// 4 Snapshot returns the current aggregate for a property
func (s *DashboardService) Snapshot(propertyID string) (*models.DashboardSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.snapshots[propertyID]
	if !ok {
		return nil, false
	}
	copied := *snapshot
	return &copied, true
}

// 5 CancelBackground cancels the deferred wave of a property, used on
// teardown so late arrivals cannot touch a dismantled snapshot
func (s *DashboardService) CancelBackground(propertyID string) {
	s.mu.Lock()
	task, ok := s.tasks[propertyID]
	if ok {
		delete(s.tasks, propertyID)
	}
	s.mu.Unlock()

	if ok {
		task.Cancel()
	}
}

// patch applies one background slice to the stored snapshot
func (s *DashboardService) patch(propertyID string, apply func(*models.DashboardSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.snapshots[propertyID]
	if !ok {
		return
	}
	apply(snapshot)
}
