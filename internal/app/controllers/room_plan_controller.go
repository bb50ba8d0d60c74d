package controllers

import (
	"errors"

	"pms-app-service/internal/app/middleware"
	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/domain/services"
	"pms-app-service/internal/domain/services/container"
	"pms-app-service/internal/error/code"
	"pms-app-service/internal/error/response"
	"pms-app-service/internal/infrastructure/upstream"

	"github.com/gin-gonic/gin"
)

// InterfaceRoomPlanController defines the room types editor controller interface
type InterfaceRoomPlanController interface {
	GetRoomGroup()
	SaveRoomGroup()
	ReorderRoomGroups()
}

// RoomPlanController handles the room types collection editor
type RoomPlanController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomPlanController creates a new room plan controller
func NewRoomPlanController(ctx *gin.Context, container *container.ServiceContainer) *RoomPlanController {
	return &RoomPlanController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomGroupSaveRequest carries the editor state at submit time. Original
// is the collection as loaded; Submitted is what the user ended with.
type RoomGroupSaveRequest struct {
	Original  models.RoomGroup `json:"original" binding:"required"`
	Submitted models.RoomGroup `json:"submitted" binding:"required"`
}

// RoomGroupReorderRequest moves one group within the ordered collection
type RoomGroupReorderRequest struct {
	Groups []models.RoomGroup `json:"groups" binding:"required"`
	From   int                `json:"from"`
	To     int                `json:"to"`
}

// HandleRoomPlanFunc returns a gin handler dispatching to the room plan controller
func HandleRoomPlanFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomPlanController(ctx, container)

		switch method {
		case "getRoomGroup":
			controller.GetRoomGroup()
		case "saveRoomGroup":
			controller.SaveRoomGroup()
		case "reorderRoomGroups":
			controller.ReorderRoomGroups()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1 GetRoomGroup loads a room type with its ordered rooms
// @Summary Get a room type
// @Description Loads the named room type and its room list from the canonical record.
// @Tags RoomPlan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Room type name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /room-types/{name} [get]
func (c *RoomPlanController) GetRoomGroup() {
	name := c.Ctx.Param("name")
	if name == "" {
		response.ParamError(c.Ctx, "room type name is required")
		return
	}

	roomPlanService := c.Container.GetService("room_plan").(services.InterfaceRoomPlanService)
	group, err := roomPlanService.LoadGroup(c.Ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			response.NotFound(c.Ctx, "room type does not exist")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to load room type: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, group)
}

// 2 SaveRoomGroup diffs the edited collection against the loaded one and
// applies deletes, updates and creates against the canonical record
// @Summary Save a room type
// @Description Persists the edited room list. Removed rooms are deleted individually; rooms with reservations are reported per room and kept, without failing the rest of the save.
// @Tags RoomPlan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param state body RoomGroupSaveRequest true "Original and submitted collection"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /room-types/save [post]
func (c *RoomPlanController) SaveRoomGroup() {
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req RoomGroupSaveRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	roomPlanService := c.Container.GetService("room_plan").(services.InterfaceRoomPlanService)
	result, err := roomPlanService.SaveGroup(c.Ctx.Request.Context(), session, &req.Original, &req.Submitted)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrRoomSaveFailed, "failed to save room type: "+err.Error(), nil)
		return
	}

	if len(result.DeleteErrors) > 0 {
		response.FailWithMessage(c.Ctx, code.ErrRoomDeleteConflict, "some rooms could not be deleted", result)
		return
	}
	response.Success(c.Ctx, result)
}

// 3 ReorderRoomGroups moves a group to a new index, keeping the rest stable
// @Summary Reorder room types
// @Tags RoomPlan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param move body RoomGroupReorderRequest true "Collection and move indices"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /room-types/reorder [post]
func (c *RoomPlanController) ReorderRoomGroups() {
	var req RoomGroupReorderRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	roomPlanService := c.Container.GetService("room_plan").(services.InterfaceRoomPlanService)
	reordered, err := roomPlanService.Reorder(req.Groups, req.From, req.To)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrRoomReorderInvalid, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, reordered)
}
