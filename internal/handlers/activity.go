package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/prodigylabs/programs-api/internal/errors"
	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/prodigylabs/programs-api/internal/repository"
	"gorm.io/gorm"
)

// ActivityHandler coordinates activity CRUD handlers.
type ActivityHandler struct {
	activityRepo repository.ActivityRepository
	programRepo  repository.ProgramRepository
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityRepo repository.ActivityRepository, programRepo repository.ProgramRepository) *ActivityHandler {
	return &ActivityHandler{
		activityRepo: activityRepo,
		programRepo:  programRepo,
	}
}

// CreateActivity creates a new activity within a program. The day number
// must fall inside the owning program's duration.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	type CreateActivityRequest struct {
		ProgramID       uint64 `json:"program_id" binding:"required"`
		Title           string `json:"title" binding:"required"`
		Description     string `json:"description"`
		DayNumber       int    `json:"day_number" binding:"required,min=1"`
		DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1"`
		Category        string `json:"category"`
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	program, err := h.programRepo.FindByID(req.ProgramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Program not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch program")
		return
	}

	if req.DayNumber > program.DurationDays {
		apierrors.BadRequest(c, "Day number is outside program duration")
		return
	}

	if req.DurationMinutes == 0 {
		req.DurationMinutes = 5
	}

	activity := models.Activity{
		ProgramID:       req.ProgramID,
		Title:           req.Title,
		Description:     req.Description,
		DayNumber:       req.DayNumber,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
	}

	if err := h.activityRepo.Create(&activity); err != nil {
		apierrors.InternalError(c, "Failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// GetActivity returns a single activity by ID.
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid activity ID")
		return
	}

	activity, err := h.activityRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Activity not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch activity")
		return
	}

	c.JSON(http.StatusOK, activity)
}

// UpdateActivity updates the provided fields of an activity.
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid activity ID")
		return
	}

	type UpdateActivityRequest struct {
		Title           *string `json:"title"`
		Description     *string `json:"description"`
		DayNumber       *int    `json:"day_number"`
		DurationMinutes *int    `json:"duration_minutes"`
		Category        *string `json:"category"`
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	activity, err := h.activityRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Activity not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch activity")
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			apierrors.BadRequest(c, "Title cannot be empty")
			return
		}
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.DayNumber != nil {
		program, err := h.programRepo.FindByID(activity.ProgramID)
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch program")
			return
		}
		if *req.DayNumber < 1 || *req.DayNumber > program.DurationDays {
			apierrors.BadRequest(c, "Day number is outside program duration")
			return
		}
		activity.DayNumber = *req.DayNumber
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < 1 {
			apierrors.BadRequest(c, "Duration must be at least 1 minute")
			return
		}
		activity.DurationMinutes = *req.DurationMinutes
	}
	if req.Category != nil {
		activity.Category = *req.Category
	}

	if err := h.activityRepo.Update(activity); err != nil {
		apierrors.InternalError(c, "Failed to update activity")
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity deletes an activity.
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid activity ID")
		return
	}

	if _, err := h.activityRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Activity not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch activity")
		return
	}

	if err := h.activityRepo.Delete(id); err != nil {
		apierrors.InternalError(c, "Failed to delete activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Activity deleted successfully",
	})
}
