package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/prodigylabs/programs-api/internal/errors"
	"github.com/prodigylabs/programs-api/internal/metrics"
	"github.com/prodigylabs/programs-api/internal/services"
)

// EnrollmentHandler coordinates enrollment HTTP handlers.
type EnrollmentHandler struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// StartProgram enrolls a user in a program.
func (h *EnrollmentHandler) StartProgram(c *gin.Context) {
	type StartProgramRequest struct {
		UserID    uint64 `json:"user_id" binding:"required"`
		ProgramID uint64 `json:"program_id" binding:"required"`
		StartDate string `json:"start_date" binding:"required"`
	}

	var req StartProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	progress, err := h.enrollmentService.Enroll(services.EnrollInput{
		UserID:    req.UserID,
		ProgramID: req.ProgramID,
		StartDate: startDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		case errors.Is(err, services.ErrProgramNotFound):
			apierrors.NotFound(c, "Program not found")
		case errors.Is(err, services.ErrAlreadyEnrolled):
			apierrors.BadRequest(c, "User already has active progress for this program")
		default:
			apierrors.InternalError(c, "Failed to start program")
		}
		return
	}

	metrics.EnrollmentsStartedTotal.Inc()
	c.JSON(http.StatusCreated, progress)
}

// Unenroll deactivates a user's active enrollment in a program.
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}
	programID, ok := parseIDParam(c, "program_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid program ID")
		return
	}

	progress, err := h.enrollmentService.Unenroll(userID, programID)
	if err != nil {
		if errors.Is(err, services.ErrEnrollmentNotFound) {
			apierrors.NotFound(c, "User progress not found")
			return
		}
		apierrors.InternalError(c, "Failed to unenroll")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Program unenrolled successfully",
		"progress": progress,
	})
}
