package routes

import (
	"time"

	_ "pms-app-service/docs"
	"pms-app-service/internal/app/controllers"
	"pms-app-service/internal/app/middleware"
	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/domain/services/container"
	"pms-app-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitSessionMiddleware(cfg)
	controllers.RegisterValidators()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerSessionRoutes(api, container)
}

// registerPublicRoutes registers routes that need no session
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 10 req/s per IP with a burst of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc("ping"))
	api.GET("/health", controllers.HandleHealthFunc("ping")) // Docker health check alias
}

// registerSessionRoutes registers routes behind the session middleware
func registerSessionRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.RequireSession())

	// 30 req/s per IP with a burst of 50
	auth.Use(middleware.IPRateLimiter(30, 50))

	// property routes
	propertyGroup := auth.Group("/properties")
	propertyGroup.GET("/:id", controllers.HandlePropertyFunc(container, "getProperty"))
	propertyGroup.POST("", controllers.HandlePropertyFunc(container, "createProperty"))
	propertyGroup.PUT("/:id", controllers.HandlePropertyFunc(container, "updateProperty"))

	// dashboard routes
	dashboardGroup := auth.Group("/dashboard")
	dashboardGroup.GET("", controllers.HandleDashboardFunc(container, "loadDashboard"))
	dashboardGroup.POST("/refresh", controllers.HandleDashboardFunc(container, "refreshDashboard"))
	dashboardGroup.GET("/snapshot", controllers.HandleDashboardFunc(container, "getSnapshot"))

	// room type routes
	roomGroup := auth.Group("/room-types")
	roomGroup.GET("/:name", controllers.HandleRoomPlanFunc(container, "getRoomGroup"))
	roomGroup.POST("/save", controllers.HandleRoomPlanFunc(container, "saveRoomGroup"))
	roomGroup.POST("/reorder", controllers.HandleRoomPlanFunc(container, "reorderRoomGroups"))

	// general settings routes
	settingsGroup := auth.Group("/settings")
	settingsGroup.GET("/general", controllers.HandleSettingsFunc(container, "getGeneralSettings"))
	settingsGroup.POST("/general", controllers.HandleSettingsFunc(container, "saveGeneralSettings"))
	settingsGroup.POST("/general/refresh", controllers.HandleSettingsFunc(container, "refreshGeneralSettings"))

	// form draft routes
	draftGroup := auth.Group("/drafts")
	draftGroup.PUT("/:key", controllers.HandleDraftFunc(container, "saveDraft"))
	draftGroup.POST("/:key/flush", controllers.HandleDraftFunc(container, "flushDraft"))
	draftGroup.GET("/:key", controllers.HandleDraftFunc(container, "getDraft"))
	draftGroup.DELETE("/:key", controllers.HandleDraftFunc(container, "deleteDraft"))

	// location lookup routes; option lists change rarely
	locationGroup := auth.Group("/locations")
	locationGroup.GET("/countries", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Hour}), controllers.HandleLocationFunc(container, "getCountries"))
	locationGroup.POST("/chain/country", controllers.HandleLocationFunc(container, "selectCountry"))
	locationGroup.POST("/chain/state", controllers.HandleLocationFunc(container, "selectState"))
	locationGroup.POST("/chain/city", controllers.HandleLocationFunc(container, "selectCity"))
	locationGroup.GET("/chain", controllers.HandleLocationFunc(container, "getChain"))
	locationGroup.DELETE("/chain", controllers.HandleLocationFunc(container, "resetChain"))

	// geocode routes
	geocodeGroup := auth.Group("/geocode")
	geocodeGroup.POST("/address", controllers.HandleGeocodeFunc(container, "updateAddress"))
	geocodeGroup.POST("/manual", controllers.HandleGeocodeFunc(container, "markManualPosition"))
	geocodeGroup.POST("/reset", controllers.HandleGeocodeFunc(container, "resetToAddress"))
	geocodeGroup.GET("/position", controllers.HandleGeocodeFunc(container, "getPosition"))

	// staff administration routes, property manager and above
	adminGroup := auth.Group("/admin")
	adminGroup.Use(middleware.RequireRole(models.RolePropertyMgr))
	adminGroup.GET("/users", controllers.HandleStaffAdminFunc(container, "getUsers"))
	adminGroup.POST("/users", controllers.HandleStaffAdminFunc(container, "createUser"))
	adminGroup.PATCH("/users/:id", controllers.HandleStaffAdminFunc(container, "updateUser"))
	adminGroup.DELETE("/users/:id", controllers.HandleStaffAdminFunc(container, "deleteUser"))
	adminGroup.POST("/invitations", controllers.HandleStaffAdminFunc(container, "inviteUser"))
	adminGroup.POST("/invitations/:id/resend", controllers.HandleStaffAdminFunc(container, "resendInvitation"))
	adminGroup.DELETE("/invitations/:id", controllers.HandleStaffAdminFunc(container, "cancelInvitation"))
	adminGroup.GET("/roles", controllers.HandleStaffAdminFunc(container, "getAssignableRoles"))
	adminGroup.POST("/test-email", controllers.HandleStaffAdminFunc(container, "sendTestEmail"))
	adminGroup.GET("/operation-logs", controllers.HandleStaffAdminFunc(container, "getOperationLogs"))
}
