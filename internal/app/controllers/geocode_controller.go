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

// InterfaceGeocodeController defines the geocode controller interface
type InterfaceGeocodeController interface {
	UpdateAddress()
	MarkManualPosition()
	ResetToAddress()
	GetPosition()
}

// GeocodeController handles the address-to-position side effect
type GeocodeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGeocodeController creates a new geocode controller
func NewGeocodeController(ctx *gin.Context, container *container.ServiceContainer) *GeocodeController {
	return &GeocodeController{
		Ctx:       ctx,
		Container: container,
	}
}

// ManualPositionRequest carries a hand-placed map pin. Pointer fields so
// a pin on the equator or prime meridian still binds.
type ManualPositionRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// HandleGeocodeFunc returns a gin handler dispatching to the geocode controller
func HandleGeocodeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGeocodeController(ctx, container)

		switch method {
		case "updateAddress":
			controller.UpdateAddress()
		case "markManualPosition":
			controller.MarkManualPosition()
		case "resetToAddress":
			controller.ResetToAddress()
		case "getPosition":
			controller.GetPosition()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *GeocodeController) formKey() (string, bool) {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return "", false
	}
	return session.FormKey("geo_position"), true
}

// 1 UpdateAddress feeds the watched address fields; geocoding is debounced
// @Summary Update the watched address
// @Description Accepts the form's address sub-fields. After the debounce window a geocode runs, unless the position was placed manually.
// @Tags Geocode
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param address body models.AddressFields true "Address fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /geocode/address [post]
func (c *GeocodeController) UpdateAddress() {
	key, ok := c.formKey()
	if !ok {
		return
	}

	var address models.AddressFields
	if err := c.Ctx.ShouldBindJSON(&address); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	geocodeService := c.Container.GetService("geocode").(services.InterfaceGeocodeService)
	geocodeService.UpdateAddress(key, address)

	response.Success(c.Ctx, gin.H{"pending": true})
}

// 2 MarkManualPosition pins the position by hand; automatic geocoding
// stops until the address is reset
// @Summary Place the map pin manually
// @Description Records a hand-placed position. Subsequent address edits no longer move the pin.
// @Tags Geocode
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param position body ManualPositionRequest true "Coordinates"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /geocode/manual [post]
func (c *GeocodeController) MarkManualPosition() {
	key, ok := c.formKey()
	if !ok {
		return
	}

	var req ManualPositionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	geocodeService := c.Container.GetService("geocode").(services.InterfaceGeocodeService)
	state := geocodeService.MarkManualPosition(key, *req.Latitude, *req.Longitude)

	response.Success(c.Ctx, state)
}

// 3 ResetToAddress drops the manual override and re-geocodes immediately
// @Summary Reset the pin to the address
// @Description Clears the manual flag and geocodes the current address right away when it is long enough.
// @Tags Geocode
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /geocode/reset [post]
func (c *GeocodeController) ResetToAddress() {
	key, ok := c.formKey()
	if !ok {
		return
	}

	geocodeService := c.Container.GetService("geocode").(services.InterfaceGeocodeService)
	state, err := geocodeService.ResetToAddress(c.Ctx.Request.Context(), key)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrGeocodeFailed, "geocode failed: "+err.Error(), state)
		return
	}

	response.Success(c.Ctx, state)
}

// 4 GetPosition returns the current position state for the form
// @Summary Get the current position
// @Tags Geocode
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /geocode/position [get]
func (c *GeocodeController) GetPosition() {
	key, ok := c.formKey()
	if !ok {
		return
	}

	geocodeService := c.Container.GetService("geocode").(services.InterfaceGeocodeService)
	response.Success(c.Ctx, geocodeService.Position(key))
}
