package container

import (
	"context"
	"sync"
	"time"

	"pms-app-service/internal/domain/services"
	"pms-app-service/internal/infrastructure/config"
	"pms-app-service/internal/infrastructure/upstream"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db       *gorm.DB
	config   *config.Config
	redis    *redis.Client
	upstream *upstream.Client

	// data storage services
	redisService services.InterfaceRedisService
	draftService services.InterfaceDraftService
	auditService services.InterfaceAuditService

	// MQTT refresh notifier
	refreshNotifier services.InterfaceRefreshNotifier

	// business services
	settingsService   services.InterfaceSettingsService
	locationService   services.InterfaceLocationService
	geocodeService    services.InterfaceGeocodeService
	dashboardService  services.InterfaceDashboardService
	roomPlanService   services.InterfaceRoomPlanService
	uploadService     services.InterfaceUploadService
	staffAdminService services.InterfaceStaffAdminService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// probe the Redis connection; lookup caching degrades gracefully
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			config.Warning("Redis connection test failed: %v, lookup caching disabled", err)
		}
	}

	container := &ServiceContainer{
		db:       db,
		config:   cfg,
		redis:    redisClient,
		upstream: upstream.NewClient(cfg),
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// storage services
	c.redisService = services.NewRedisService(c.config)
	c.draftService = services.NewDraftService(c.db, c.config)
	c.auditService = services.NewAuditService(c.db)

	// MQTT refresh notifier; room-plan saves publish change events
	c.refreshNotifier = services.NewMQTTRefreshNotifier(c.config)
	if err := c.refreshNotifier.Connect(); err != nil {
		config.Warning("MQTT connection failed: %v, refresh notifications disabled", err)
		c.refreshNotifier = &services.NoopRefreshNotifier{}
	}

	// business services
	c.settingsService = services.NewSettingsService(c.upstream, c.draftService, c.auditService)
	c.locationService = services.NewLocationService(c.upstream, c.redisService)
	c.geocodeService = services.NewGeocodeService(c.upstream, c.config)
	c.dashboardService = services.NewDashboardService(c.upstream, c.config)
	c.roomPlanService = services.NewRoomPlanService(c.upstream, c.draftService, c.refreshNotifier, c.auditService)
	c.uploadService = services.NewUploadService(c.upstream)
	c.staffAdminService = services.NewStaffAdminService(c.upstream, c.draftService, c.auditService)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "upstream":
		return c.upstream
	case "redis":
		return c.redisService
	case "draft":
		return c.draftService
	case "audit":
		return c.auditService
	case "refresh_notifier":
		return c.refreshNotifier
	case "settings":
		return c.settingsService
	case "location":
		return c.locationService
	case "geocode":
		return c.geocodeService
	case "dashboard":
		return c.dashboardService
	case "room_plan":
		return c.roomPlanService
	case "upload":
		return c.uploadService
	case "staff_admin":
		return c.staffAdminService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
