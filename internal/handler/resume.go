package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/resume-system/backend/internal/model"
	"github.com/resume-system/backend/internal/service"
)

type ResumeHandler struct {
	svc *service.ResumeService
}

func NewResumeHandler(svc *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// List godoc
// @Summary List the authenticated user's resumes
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Resume
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/resumes [get]
func (h *ResumeHandler) List(c *gin.Context) {
	user := GetAuthUser(c)
	list, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Get a resume
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resume ID"
// @Success 200 {object} model.Resume
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/resumes/{id} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user := GetAuthUser(c)
	resume, err := h.svc.Get(c.Request.Context(), id, user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

// Create godoc
// @Summary Create a resume
// @Tags resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateResumeRequest true "Resume payload"
// @Success 201 {object} model.Resume
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/resumes [post]
func (h *ResumeHandler) Create(c *gin.Context) {
	var req model.CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	user := GetAuthUser(c)
	resume, err := h.svc.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

// Update godoc
// @Summary Update a resume
// @Tags resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resume ID"
// @Param request body model.UpdateResumeRequest true "Fields to update"
// @Success 200 {object} model.Resume
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/resumes/{id} [put]
func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user := GetAuthUser(c)
	resume, err := h.svc.Update(c.Request.Context(), id, user.ID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

// Delete godoc
// @Summary Delete a resume
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resume ID"
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user := GetAuthUser(c)
	if err := h.svc.Delete(c.Request.Context(), id, user.ID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Resume deleted successfully"})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
