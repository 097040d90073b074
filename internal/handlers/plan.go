package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prodigylabs/programs-api/internal/constants"
	apierrors "github.com/prodigylabs/programs-api/internal/errors"
	"github.com/prodigylabs/programs-api/internal/metrics"
	"github.com/prodigylabs/programs-api/internal/services"
)

// PlanHandler coordinates the day-plan, week-plan, completion, and
// progress-summary handlers.
type PlanHandler struct {
	planService *services.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// GetDayPlan returns the plan for one program day. The date query parameter
// defaults to today.
func (h *PlanHandler) GetDayPlan(c *gin.Context) {
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

	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	plan, err := h.planService.DayPlan(userID, programID, date)
	if err != nil {
		respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetWeekPlan returns the day plans for one program week.
func (h *PlanHandler) GetWeekPlan(c *gin.Context) {
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

	week, err := strconv.Atoi(c.DefaultQuery("week", strconv.Itoa(constants.DefaultWeek)))
	if err != nil {
		apierrors.BadRequest(c, "Invalid week number")
		return
	}

	plan, err := h.planService.WeekPlan(userID, programID, week)
	if err != nil {
		respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// CompleteActivity marks an activity complete for a user on a calendar date.
func (h *PlanHandler) CompleteActivity(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	type CompleteActivityRequest struct {
		ActivityID     uint64 `json:"activity_id" binding:"required"`
		CompletionDate string `json:"completion_date" binding:"required"`
	}

	var req CompleteActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	completionDate, err := parseDate(req.CompletionDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	completion, err := h.planService.CompleteActivity(userID, req.ActivityID, completionDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrActivityNotFound):
			apierrors.NotFound(c, "Activity not found")
		case errors.Is(err, services.ErrAlreadyCompleted):
			apierrors.BadRequest(c, "Activity already completed for this date")
		default:
			apierrors.InternalError(c, "Failed to complete activity")
		}
		return
	}

	metrics.CompletionsRecordedTotal.Inc()
	c.JSON(http.StatusOK, gin.H{
		"message":      "Activity marked as complete",
		"completed_at": completion.CompletedAt,
	})
}

// GetProgressSummary returns lifetime completion stats for the user's active
// enrollment in a program.
func (h *PlanHandler) GetProgressSummary(c *gin.Context) {
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

	summary, err := h.planService.ProgressSummary(userID, programID)
	if err != nil {
		respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// respondPlanError maps plan service errors to HTTP responses.
func respondPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEnrollmentNotFound):
		apierrors.NotFound(c, "User progress not found")
	case errors.Is(err, services.ErrProgramNotFound):
		apierrors.NotFound(c, "Program not found")
	case errors.Is(err, services.ErrDateOutsideProgram):
		apierrors.BadRequest(c, "Date is outside program duration")
	case errors.Is(err, services.ErrInvalidWeek):
		apierrors.BadRequest(c, "Week must be between 1 and 4")
	default:
		apierrors.InternalError(c, "Failed to build plan")
	}
}
