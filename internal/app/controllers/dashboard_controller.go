package controllers

import (
	"pms-app-service/internal/app/middleware"
	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/domain/services"
	"pms-app-service/internal/domain/services/container"
	"pms-app-service/internal/error/code"
	"pms-app-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceDashboardController defines the dashboard controller interface
type InterfaceDashboardController interface {
	LoadDashboard()
	RefreshDashboard()
	GetSnapshot()
}

// DashboardController handles the two-wave dashboard aggregate
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc returns a gin handler dispatching to the dashboard controller
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "loadDashboard":
			controller.LoadDashboard()
		case "refreshDashboard":
			controller.RefreshDashboard()
		case "getSnapshot":
			controller.GetSnapshot()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// activityTab reads and validates the activity tab query parameter
func (c *DashboardController) activityTab() models.ActivityType {
	tab := models.ActivityType(c.Ctx.DefaultQuery("tab", string(models.ActivitySales)))
	if !tab.Valid() {
		tab = models.ActivitySales
	}
	return tab
}

// 1 LoadDashboard fetches the essential wave and kicks off the deferred one
// @Summary Load the dashboard
// @Description Fetches property, stats and today's reservations together; all three must land before the snapshot is returned. Tomorrow's reservations and the activity feed load in the background afterwards.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tab query string false "Activity tab: sales, cancellations or overbookings"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) LoadDashboard() {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	snapshot, err := dashboardService.LoadEssential(c.Ctx.Request.Context(), session.PropertyID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to load dashboard: "+err.Error(), nil)
		return
	}

	dashboardService.SpawnBackground(session.PropertyID, c.activityTab())
	response.Success(c.Ctx, snapshot)
}

// 2 RefreshDashboard reloads both waves and waits for the deferred one
// @Summary Refresh the dashboard
// @Description Re-runs the essential wave and, unlike the initial load, waits for the background wave so the response carries a complete snapshot.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tab query string false "Activity tab: sales, cancellations or overbookings"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /dashboard/refresh [post]
func (c *DashboardController) RefreshDashboard() {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	snapshot, err := dashboardService.Refresh(c.Ctx.Request.Context(), session.PropertyID, c.activityTab())
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to refresh dashboard: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, snapshot)
}

// 3 GetSnapshot returns the last assembled snapshot without fetching
// @Summary Get the cached dashboard snapshot
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/snapshot [get]
func (c *DashboardController) GetSnapshot() {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	snapshot, found := dashboardService.Snapshot(session.PropertyID)
	if !found {
		response.NotFound(c.Ctx, "no dashboard snapshot loaded yet")
		return
	}

	response.Success(c.Ctx, snapshot)
}
