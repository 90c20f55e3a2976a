package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resume-system/backend/internal/model"
	"github.com/resume-system/backend/internal/service"
)

type AIHandler struct{}

func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

// GenerateSummary godoc
// @Summary Generate a professional summary from achievements
// @Description Deterministic template generator; no model inference involved.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body model.GenerateSummaryRequest true "Achievement records"
// @Success 200 {object} model.GenerateSummaryResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/ai/generate-summary [post]
func (h *AIHandler) GenerateSummary(c *gin.Context) {
	var req model.GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, model.GenerateSummaryResponse{
		Summary: service.GenerateSummary(req.Achievements),
	})
}

// OptimizeContent godoc
// @Summary Optimize resume content
// @Tags ai
// @Accept json
// @Produce json
// @Param request body model.OptimizeContentRequest true "Content to optimize"
// @Success 200 {object} model.OptimizeContentResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/ai/optimize-content [post]
func (h *AIHandler) OptimizeContent(c *gin.Context) {
	var req model.OptimizeContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, service.OptimizeContent(req.Content))
}
