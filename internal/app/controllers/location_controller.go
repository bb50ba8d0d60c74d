package controllers

import (
	"pms-app-service/internal/app/middleware"
	"pms-app-service/internal/domain/services"
	"pms-app-service/internal/domain/services/container"
	"pms-app-service/internal/error/code"
	"pms-app-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceLocationController defines the location lookup controller interface
type InterfaceLocationController interface {
	GetCountries()
	SelectCountry()
	SelectState()
	SelectCity()
	GetChain()
	ResetChain()
}

// LocationController handles the dependent country/state/city lookups
type LocationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLocationController creates a new location controller
func NewLocationController(ctx *gin.Context, container *container.ServiceContainer) *LocationController {
	return &LocationController{
		Ctx:       ctx,
		Container: container,
	}
}

// LocationSelectRequest carries the selected option code. An empty code
// clears the selection and everything below it.
type LocationSelectRequest struct {
	Code string `json:"code"`
}

// HandleLocationFunc returns a gin handler dispatching to the location controller
func HandleLocationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLocationController(ctx, container)

		switch method {
		case "getCountries":
			controller.GetCountries()
		case "selectCountry":
			controller.SelectCountry()
		case "selectState":
			controller.SelectState()
		case "selectCity":
			controller.SelectCity()
		case "getChain":
			controller.GetChain()
		case "resetChain":
			controller.ResetChain()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// chainKey scopes the lookup chain to the caller's form
func (c *LocationController) chainKey() (string, bool) {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return "", false
	}
	return session.FormKey("location_chain"), true
}

// 1 GetCountries returns the country option list
// @Summary List countries
// @Description Returns the cached country options for the address form.
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /locations/countries [get]
func (c *LocationController) GetCountries() {
	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	countries, err := locationService.Countries(c.Ctx.Request.Context())
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to load countries: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, countries)
}

// 2 SelectCountry picks a country; state and city reset and the state
// options reload
// @Summary Select a country
// @Description Sets the chain's country. Dependent state and city selections are cleared and the state option list is fetched.
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body LocationSelectRequest true "Country code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /locations/chain/country [post]
func (c *LocationController) SelectCountry() {
	key, ok := c.chainKey()
	if !ok {
		return
	}

	var req LocationSelectRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	chain, err := locationService.SelectCountry(c.Ctx.Request.Context(), key, req.Code)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to load states: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, chain)
}

// 3 SelectState picks a state; city resets and the city options reload
// @Summary Select a state
// @Description Sets the chain's state. The city selection is cleared and the city option list is fetched.
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body LocationSelectRequest true "State code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /locations/chain/state [post]
func (c *LocationController) SelectState() {
	key, ok := c.chainKey()
	if !ok {
		return
	}

	var req LocationSelectRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	chain, err := locationService.SelectState(c.Ctx.Request.Context(), key, req.Code)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to load cities: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, chain)
}

// 4 SelectCity picks a city, completing the chain
// @Summary Select a city
// @Description Sets the chain's city. No dependent lookups remain.
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body LocationSelectRequest true "City name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /locations/chain/city [post]
func (c *LocationController) SelectCity() {
	key, ok := c.chainKey()
	if !ok {
		return
	}

	var req LocationSelectRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	chain := locationService.SelectCity(key, req.Code)
	response.Success(c.Ctx, chain)
}

// 5 GetChain returns the current chain selections and option lists
// @Summary Get the lookup chain state
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /locations/chain [get]
func (c *LocationController) GetChain() {
	key, ok := c.chainKey()
	if !ok {
		return
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	response.Success(c.Ctx, locationService.State(key))
}

// 6 ResetChain clears all chain selections
// @Summary Reset the lookup chain
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /locations/chain [delete]
func (c *LocationController) ResetChain() {
	key, ok := c.chainKey()
	if !ok {
		return
	}

	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	locationService.Reset(key)
	response.Success(c.Ctx, nil)
}
