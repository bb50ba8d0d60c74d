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

// InterfaceSettingsController defines the general settings controller interface
type InterfaceSettingsController interface {
	GetGeneralSettings()
	RefreshGeneralSettings()
	SaveGeneralSettings()
}

// SettingsController handles property general settings requests
type SettingsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSettingsController creates a new settings controller
func NewSettingsController(ctx *gin.Context, container *container.ServiceContainer) *SettingsController {
	return &SettingsController{
		Ctx:       ctx,
		Container: container,
	}
}

// SettingsRefreshRequest carries the form state for a remote refresh
type SettingsRefreshRequest struct {
	Current    models.GeneralSettings `json:"current" binding:"required"`
	Interacted bool                   `json:"interacted"`
}

// HandleSettingsFunc returns a gin handler dispatching to the settings controller
func HandleSettingsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSettingsController(ctx, container)

		switch method {
		case "getGeneralSettings":
			controller.GetGeneralSettings()
		case "refreshGeneralSettings":
			controller.RefreshGeneralSettings()
		case "saveGeneralSettings":
			controller.SaveGeneralSettings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1 GetGeneralSettings loads the canonical settings for the current scope
// @Summary Load general settings
// @Description Returns the property's general settings. With mode=new the remote fetch is skipped and defaults are returned for a fresh form.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mode query string false "Load mode: existing (default) or new"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /settings/general [get]
func (c *SettingsController) GetGeneralSettings() {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	mode := services.ModeExisting
	if c.Ctx.Query("mode") == string(services.ModeNewProperty) {
		mode = services.ModeNewProperty
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.LoadGeneral(c.Ctx.Request.Context(), session, mode)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to load settings: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, settings)
}

// 2 RefreshGeneralSettings reconciles the form against the remote record.
// The submitted values win whenever the user has already interacted.
// @Summary Refresh general settings
// @Description Fetches the remote settings and reconciles them with the submitted form state. Untouched forms adopt the remote values; touched forms keep theirs.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param state body SettingsRefreshRequest true "Current form state"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /settings/general/refresh [post]
func (c *SettingsController) RefreshGeneralSettings() {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req SettingsRefreshRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	remote, err := settingsService.LoadGeneral(c.Ctx.Request.Context(), session, services.ModeExisting)
	if err != nil {
		// refresh is best effort, the form keeps its values
		response.Success(c.Ctx, &req.Current)
		return
	}

	effective := settingsService.Reconcile(&req.Current, remote, req.Interacted)
	response.Success(c.Ctx, effective)
}

// 3 SaveGeneralSettings persists the settings and clears the form draft
// @Summary Save general settings
// @Description Writes the submitted settings upstream, clears the associated draft on success, and returns the saved record.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body models.GeneralSettings true "General settings"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /settings/general [post]
func (c *SettingsController) SaveGeneralSettings() {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var settings models.GeneralSettings
	if err := c.Ctx.ShouldBindJSON(&settings); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	saved, err := settingsService.SaveGeneral(c.Ctx.Request.Context(), session, &settings)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to save settings: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, saved)
}
