package dto

import (
	"time"

	"github.com/prodigylabs/programs-api/internal/models"
)

// ActivityWithCompletion represents an activity annotated with the user's
// completion status for a specific date
type ActivityWithCompletion struct {
	ID              uint64     `json:"id"`
	ProgramID       uint64     `json:"program_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DayNumber       int        `json:"day_number"`
	DurationMinutes int        `json:"duration_minutes"`
	Category        string     `json:"category"`
	IsCompleted     bool       `json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at"`
}

// DayPlan represents the scheduled activities of one program day together
// with the user's completion stats
type DayPlan struct {
	Date                 time.Time                `json:"date"`
	DayNumber            int                      `json:"day_number"`
	Activities           []ActivityWithCompletion `json:"activities"`
	TotalActivities      int                      `json:"total_activities"`
	CompletedActivities  int                      `json:"completed_activities"`
	CompletionPercentage float64                  `json:"completion_percentage"`
}

// WeekPlan represents the day plans of one program week
type WeekPlan struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      []DayPlan `json:"days"`
}

// ProgressSummary represents a user's lifetime completion stats for a program
type ProgressSummary struct {
	UserID              uint64    `json:"user_id"`
	ProgramID           uint64    `json:"program_id"`
	StartDate           time.Time `json:"start_date"`
	CurrentDay          int       `json:"current_day"`
	TotalActivities     int64     `json:"total_activities"`
	CompletedActivities int64     `json:"completed_activities"`
	CompletionRate      float64   `json:"completion_rate"`
	IsActive            bool      `json:"is_active"`
}

// ToActivityWithCompletion converts an activity and its completion record,
// if any, to the annotated DTO
func ToActivityWithCompletion(activity models.Activity, completion *models.UserActivityCompletion) ActivityWithCompletion {
	dto := ActivityWithCompletion{
		ID:              activity.ID,
		ProgramID:       activity.ProgramID,
		Title:           activity.Title,
		Description:     activity.Description,
		DayNumber:       activity.DayNumber,
		DurationMinutes: activity.DurationMinutes,
		Category:        activity.Category,
	}

	if completion != nil {
		dto.IsCompleted = true
		completedAt := completion.CompletedAt
		dto.CompletedAt = &completedAt
	}

	return dto
}

// NewDayPlan assembles a day plan from the day's activities and the user's
// completions for that date
func NewDayPlan(date time.Time, dayNumber int, activities []models.Activity, completions []models.UserActivityCompletion) DayPlan {
	completionsByActivity := make(map[uint64]*models.UserActivityCompletion, len(completions))
	for i := range completions {
		completionsByActivity[completions[i].ActivityID] = &completions[i]
	}

	annotated := make([]ActivityWithCompletion, len(activities))
	completed := 0
	for i, activity := range activities {
		annotated[i] = ToActivityWithCompletion(activity, completionsByActivity[activity.ID])
		if annotated[i].IsCompleted {
			completed++
		}
	}

	percentage := 0.0
	if len(annotated) > 0 {
		percentage = float64(completed) / float64(len(annotated)) * 100
	}

	return DayPlan{
		Date:                 date,
		DayNumber:            dayNumber,
		Activities:           annotated,
		TotalActivities:      len(annotated),
		CompletedActivities:  completed,
		CompletionPercentage: percentage,
	}
}
