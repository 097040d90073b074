package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/prodigylabs/programs-api/internal/errors"
	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/prodigylabs/programs-api/internal/repository"
	"github.com/prodigylabs/programs-api/internal/utils"
	"gorm.io/gorm"
)

// ProgramHandler coordinates program CRUD handlers.
type ProgramHandler struct {
	programRepo  repository.ProgramRepository
	activityRepo repository.ActivityRepository
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programRepo repository.ProgramRepository, activityRepo repository.ActivityRepository) *ProgramHandler {
	return &ProgramHandler{
		programRepo:  programRepo,
		activityRepo: activityRepo,
	}
}

// CreateProgram creates a new program.
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	type CreateProgramRequest struct {
		Name         string `json:"name" binding:"required"`
		Description  string `json:"description"`
		DurationDays int    `json:"duration_days" binding:"omitempty,min=1"`
	}

	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	if req.DurationDays == 0 {
		req.DurationDays = 30
	}

	program := models.Program{
		Name:         req.Name,
		Description:  req.Description,
		DurationDays: req.DurationDays,
	}

	if err := h.programRepo.Create(&program); err != nil {
		apierrors.InternalError(c, "Failed to create program")
		return
	}

	c.JSON(http.StatusCreated, program)
}

// ListPrograms returns all programs, paginated.
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	programs, total, err := h.programRepo.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch programs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"programs": programs,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetProgram returns a single program by ID.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid program ID")
		return
	}

	program, err := h.programRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Program not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch program")
		return
	}

	c.JSON(http.StatusOK, program)
}

// UpdateProgram updates the provided fields of a program.
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid program ID")
		return
	}

	type UpdateProgramRequest struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		DurationDays *int    `json:"duration_days"`
	}

	var req UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	program, err := h.programRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Program not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch program")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			apierrors.BadRequest(c, "Name cannot be empty")
			return
		}
		program.Name = *req.Name
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if req.DurationDays != nil {
		if *req.DurationDays < 1 {
			apierrors.BadRequest(c, "Duration must be at least 1 day")
			return
		}
		program.DurationDays = *req.DurationDays
	}

	if err := h.programRepo.Update(program); err != nil {
		apierrors.InternalError(c, "Failed to update program")
		return
	}

	c.JSON(http.StatusOK, program)
}

// DeleteProgram deletes a program and its activities.
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid program ID")
		return
	}

	if _, err := h.programRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Program not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch program")
		return
	}

	if err := h.programRepo.Delete(id); err != nil {
		apierrors.InternalError(c, "Failed to delete program")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Program deleted successfully",
	})
}

// ListProgramActivities returns a program's activities ordered by day number.
func (h *ProgramHandler) ListProgramActivities(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid program ID")
		return
	}

	if _, err := h.programRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Program not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch program")
		return
	}

	activities, err := h.activityRepo.ListByProgram(id)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
	})
}
