package controllers

import (
	"errors"

	"pms-app-service/internal/app/middleware"
	"pms-app-service/internal/domain/services"
	"pms-app-service/internal/domain/services/container"
	"pms-app-service/internal/error/code"
	"pms-app-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceDraftController defines the form draft controller interface
type InterfaceDraftController interface {
	SaveDraft()
	FlushDraft()
	GetDraft()
	DeleteDraft()
}

// DraftController handles form draft persistence requests
type DraftController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDraftController creates a new draft controller
func NewDraftController(ctx *gin.Context, container *container.ServiceContainer) *DraftController {
	return &DraftController{
		Ctx:       ctx,
		Container: container,
	}
}

// DraftRequest carries the current form values
type DraftRequest struct {
	Values map[string]interface{} `json:"values" binding:"required"`
}

// HandleDraftFunc returns a gin handler dispatching to the draft controller
func HandleDraftFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDraftController(ctx, container)

		switch method {
		case "saveDraft":
			controller.SaveDraft()
		case "flushDraft":
			controller.FlushDraft()
		case "getDraft":
			controller.GetDraft()
		case "deleteDraft":
			controller.DeleteDraft()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// formKey scopes the path key to the caller's organization and property
func (c *DraftController) formKey() (string, bool) {
	key := c.Ctx.Param("key")
	if key == "" {
		response.ParamError(c.Ctx, "draft key is required")
		return "", false
	}
	session, ok := middleware.GetSession(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return "", false
	}
	return session.FormKey(key), true
}

// 1 SaveDraft accepts the latest form values; persistence is debounced
// @Summary Save a form draft
// @Description Stores the submitted form values under the scoped draft key. Writes are debounced, so rapid successive saves coalesce into one persisted record.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Draft key"
// @Param draft body DraftRequest true "Form values"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /drafts/{key} [put]
func (c *DraftController) SaveDraft() {
	key, ok := c.formKey()
	if !ok {
		return
	}

	var req DraftRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	draftService := c.Container.GetService("draft").(services.InterfaceDraftService)
	draftService.Save(key, req.Values)

	response.Success(c.Ctx, gin.H{"key": key, "pending": true})
}

// 2 FlushDraft persists any pending draft write immediately
// @Summary Flush a pending draft
// @Description Forces the debounced draft write to disk, used before navigation away.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Draft key"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /drafts/{key}/flush [post]
func (c *DraftController) FlushDraft() {
	key, ok := c.formKey()
	if !ok {
		return
	}

	draftService := c.Container.GetService("draft").(services.InterfaceDraftService)
	if err := draftService.Flush(key); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDraftStoreFailed, "failed to flush draft: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"key": key})
}

// 3 GetDraft returns the persisted draft values for rehydration
// @Summary Load a form draft
// @Description Returns the stored form values for the scoped draft key.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Draft key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /drafts/{key} [get]
func (c *DraftController) GetDraft() {
	key, ok := c.formKey()
	if !ok {
		return
	}

	draftService := c.Container.GetService("draft").(services.InterfaceDraftService)
	values, err := draftService.Load(key)
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			response.NotFound(c.Ctx, "no draft stored for this key")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDraftStoreFailed, "failed to load draft: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"key": key, "values": values})
}

// 4 DeleteDraft discards the stored draft
// @Summary Delete a form draft
// @Description Removes the stored draft, typically after a successful submit.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Draft key"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /drafts/{key} [delete]
func (c *DraftController) DeleteDraft() {
	key, ok := c.formKey()
	if !ok {
		return
	}

	draftService := c.Container.GetService("draft").(services.InterfaceDraftService)
	if err := draftService.Clear(key); err != nil && !errors.Is(err, services.ErrDraftNotFound) {
		response.FailWithMessage(c.Ctx, code.ErrDraftStoreFailed, "failed to delete draft: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
