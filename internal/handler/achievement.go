package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resume-system/backend/internal/model"
	"github.com/resume-system/backend/internal/service"
)

type AchievementHandler struct {
	svc *service.AchievementService
}

func NewAchievementHandler(svc *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{svc: svc}
}

// List godoc
// @Summary List the authenticated user's achievements
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Achievement
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/achievements [get]
func (h *AchievementHandler) List(c *gin.Context) {
	user := GetAuthUser(c)
	list, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Get an achievement
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement ID"
// @Success 200 {object} model.Achievement
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/achievements/{id} [get]
func (h *AchievementHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user := GetAuthUser(c)
	achievement, err := h.svc.Get(c.Request.Context(), id, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievement)
}

// Create godoc
// @Summary Create an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateAchievementRequest true "Achievement payload"
// @Success 201 {object} model.Achievement
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/achievements [post]
func (h *AchievementHandler) Create(c *gin.Context) {
	var req model.CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and title are required"})
		return
	}
	user := GetAuthUser(c)
	achievement, err := h.svc.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, achievement)
}

// Update godoc
// @Summary Update an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement ID"
// @Param request body model.UpdateAchievementRequest true "Fields to update"
// @Success 200 {object} model.Achievement
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/achievements/{id} [put]
func (h *AchievementHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.UpdateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user := GetAuthUser(c)
	achievement, err := h.svc.Update(c.Request.Context(), id, user.ID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievement)
}

// Delete godoc
// @Summary Delete an achievement
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement ID"
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/achievements/{id} [delete]
func (h *AchievementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user := GetAuthUser(c)
	if err := h.svc.Delete(c.Request.Context(), id, user.ID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Achievement deleted successfully"})
}
