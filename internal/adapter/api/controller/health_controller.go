package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/therapy-chatbot-api/internal/adapter/api/dto"
)

// HealthController handles health check requests
type HealthController struct{}

// NewHealthController creates a new health controller
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check godoc
// @Summary Health check
// @Description Reports that the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewHealthResponse())
}
