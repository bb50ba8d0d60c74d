package controllers

import (
	"github.com/gin-gonic/gin"

	"pms-app-service/internal/error/response"
)

// HealthCheckController handles health probes
type HealthCheckController struct{}

// NewHealthCheckController creates a health check controller
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// HandleHealthFunc returns a gin handler dispatching to the health controller
func HandleHealthFunc(method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController()

		switch method {
		case "ping":
			controller.Ping(ctx)
		default:
			response.NotFound(ctx, "invalid method")
		}
	}
}

// Ping health check endpoint
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// ErrorResponse describes an error envelope
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"invalid token"`
	Data    interface{} `json:"data"`
}
