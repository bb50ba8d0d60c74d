package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"

	"pms-app-service/internal/domain/models"
	"pms-app-service/internal/domain/services"
	"pms-app-service/internal/domain/services/container"
	"pms-app-service/internal/error/code"
	"pms-app-service/internal/error/response"
	"pms-app-service/internal/infrastructure/upstream"

	"github.com/gin-gonic/gin"
)

// InterfacePropertyController defines the property controller interface
type InterfacePropertyController interface {
	GetProperty()
	CreateProperty()
	UpdateProperty()
}

// PropertyController handles property CRUD with photo uploads
type PropertyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPropertyController creates a new property controller
func NewPropertyController(ctx *gin.Context, container *container.ServiceContainer) *PropertyController {
	return &PropertyController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandlePropertyFunc returns a gin handler dispatching to the property controller
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPropertyController(ctx, container)

		switch method {
		case "getProperty":
			controller.GetProperty()
		case "createProperty":
			controller.CreateProperty()
		case "updateProperty":
			controller.UpdateProperty()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1 GetProperty fetches a property by id
// @Summary Get a property
// @Tags Property
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id} [get]
func (c *PropertyController) GetProperty() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "property id is required")
		return
	}

	upstreamClient := c.Container.GetService("upstream").(*upstream.Client)
	property, err := upstreamClient.GetProperty(c.Ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrPropertyNotFound, "property does not exist", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrUpstream, "failed to load property: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, property)
}

// parsePropertyForm decodes the multipart payload and uploads any
// attached photos. Uploads run before the entity mutation so a storage
// failure leaves the canonical record untouched.
func (c *PropertyController) parsePropertyForm() (*models.Property, bool) {
	payload := c.Ctx.PostForm("payload")
	if payload == "" {
		response.ParamError(c.Ctx, "payload form field is required")
		return nil, false
	}

	var property models.Property
	if err := json.Unmarshal([]byte(payload), &property); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid property payload: "+err.Error(), nil)
		return nil, false
	}

	form, err := c.Ctx.MultipartForm()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid multipart form: "+err.Error(), nil)
		return nil, false
	}

	attachments, ok := c.readAttachments(form.File["photos"])
	if !ok {
		return nil, false
	}

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	urls, err := uploadService.UploadAll(c.Ctx.Request.Context(), attachments)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUploadPutFailed, "photo upload failed: "+err.Error(), nil)
		return nil, false
	}

	property.Photos = append(property.Photos, urls...)
	return &property, true
}

func (c *PropertyController) readAttachments(files []*multipart.FileHeader) ([]services.Attachment, bool) {
	var attachments []services.Attachment
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrBind, "failed to read photo "+header.Filename+": "+err.Error(), nil)
			return nil, false
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrBind, "failed to read photo "+header.Filename+": "+err.Error(), nil)
			return nil, false
		}
		attachments = append(attachments, services.Attachment{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return attachments, true
}

// 2 CreateProperty creates a property, uploading photos first
// @Summary Create a property
// @Description Accepts a multipart form with a JSON payload field and optional photo files. Photos upload to storage before the property is created.
// @Tags Property
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param payload formData string true "Property JSON"
// @Param photos formData file false "Photo files"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /properties [post]
func (c *PropertyController) CreateProperty() {
	property, ok := c.parsePropertyForm()
	if !ok {
		return
	}

	upstreamClient := c.Container.GetService("upstream").(*upstream.Client)
	created, err := upstreamClient.CreateProperty(c.Ctx.Request.Context(), property)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrPropertySaveFailed, "failed to create property: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, created)
}

// 3 UpdateProperty updates a property, uploading new photos first
// @Summary Update a property
// @Description Same multipart contract as create. Newly uploaded photo URLs append to the payload's photo list.
// @Tags Property
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param payload formData string true "Property JSON"
// @Param photos formData file false "Photo files"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /properties/{id} [put]
func (c *PropertyController) UpdateProperty() {
	id := c.Ctx.Param("id")
	if id == "" {
		response.ParamError(c.Ctx, "property id is required")
		return
	}

	property, ok := c.parsePropertyForm()
	if !ok {
		return
	}

	upstreamClient := c.Container.GetService("upstream").(*upstream.Client)
	updated, err := upstreamClient.UpdateProperty(c.Ctx.Request.Context(), id, property)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrPropertyNotFound, "property does not exist", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrPropertySaveFailed, "failed to update property: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, updated)
}
