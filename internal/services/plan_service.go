package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/prodigylabs/programs-api/internal/calendar"
	"github.com/prodigylabs/programs-api/internal/constants"
	"github.com/prodigylabs/programs-api/internal/dto"
	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/prodigylabs/programs-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEnrollmentNotFound = errors.New("user progress not found")
	ErrProgramNotFound    = errors.New("program not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrAlreadyCompleted   = errors.New("activity already completed for this date")
	ErrDateOutsideProgram = errors.New("date is outside program duration")
	ErrInvalidWeek        = errors.New("week must be between 1 and 4")
)

// PlanService produces day plans, week plans, and progress summaries, and
// records activity completions.
type PlanService struct {
	programRepo    repository.ProgramRepository
	activityRepo   repository.ActivityRepository
	progressRepo   repository.ProgressRepository
	completionRepo repository.CompletionRepository
}

// NewPlanService creates a new PlanService
func NewPlanService(
	programRepo repository.ProgramRepository,
	activityRepo repository.ActivityRepository,
	progressRepo repository.ProgressRepository,
	completionRepo repository.CompletionRepository,
) *PlanService {
	return &PlanService{
		programRepo:    programRepo,
		activityRepo:   activityRepo,
		progressRepo:   progressRepo,
		completionRepo: completionRepo,
	}
}

// DayPlan returns the plan for one program day. A nil date means today.
func (s *PlanService) DayPlan(userID, programID uint64, date *time.Time) (*dto.DayPlan, error) {
	progress, program, err := s.findEnrollment(userID, programID)
	if err != nil {
		return nil, err
	}

	targetDate := calendar.Midnight(time.Now())
	if date != nil {
		targetDate = calendar.Midnight(*date)
	}

	dayNumber := calendar.DayNumberFromDate(progress.StartDate, targetDate)
	if dayNumber < 1 || dayNumber > program.DurationDays {
		return nil, ErrDateOutsideProgram
	}

	plan, err := s.buildDayPlan(userID, programID, targetDate, dayNumber)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// WeekPlan returns the day plans for one program week. Days beyond the
// program duration are omitted.
func (s *PlanService) WeekPlan(userID, programID uint64, week int) (*dto.WeekPlan, error) {
	progress, program, err := s.findEnrollment(userID, programID)
	if err != nil {
		return nil, err
	}

	if week < constants.MinWeek || week > constants.MaxWeek {
		return nil, ErrInvalidWeek
	}

	weekStart, weekEnd := calendar.WeekDateRange(progress.StartDate, week)

	days := make([]dto.DayPlan, 0, 7)
	for i := 0; i < 7; i++ {
		currentDate := weekStart.AddDate(0, 0, i)
		dayNumber := calendar.DayNumberFromDate(progress.StartDate, currentDate)

		if dayNumber > program.DurationDays {
			break
		}

		plan, err := s.buildDayPlan(userID, programID, currentDate, dayNumber)
		if err != nil {
			return nil, err
		}
		days = append(days, *plan)
	}

	return &dto.WeekPlan{
		StartDate: weekStart,
		EndDate:   weekEnd,
		Days:      days,
	}, nil
}

// ProgressSummary returns a user's lifetime completion stats for a program.
func (s *PlanService) ProgressSummary(userID, programID uint64) (*dto.ProgressSummary, error) {
	progress, program, err := s.findEnrollment(userID, programID)
	if err != nil {
		return nil, err
	}

	totalCompletions, err := s.completionRepo.CountForProgram(userID, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}

	currentDay := calendar.DayNumberFromDate(progress.StartDate, time.Now())
	if currentDay > program.DurationDays {
		currentDay = program.DurationDays
	}

	totalActivities, err := s.activityRepo.CountThroughDay(programID, currentDay)
	if err != nil {
		return nil, fmt.Errorf("failed to count activities: %w", err)
	}

	completionRate := 0.0
	if totalActivities > 0 {
		completionRate = float64(totalCompletions) / float64(totalActivities) * 100
	}

	return &dto.ProgressSummary{
		UserID:              userID,
		ProgramID:           programID,
		StartDate:           progress.StartDate,
		CurrentDay:          currentDay,
		TotalActivities:     totalActivities,
		CompletedActivities: totalCompletions,
		CompletionRate:      completionRate,
		IsActive:            progress.IsActive,
	}, nil
}

// CompleteActivity records that a user performed an activity on a calendar
// date. At most one completion per (user, activity, date) is allowed.
func (s *PlanService) CompleteActivity(userID, activityID uint64, completionDate time.Time) (*models.UserActivityCompletion, error) {
	if _, err := s.activityRepo.FindByID(activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}

	_, err := s.completionRepo.FindForActivityOnDate(userID, activityID, completionDate)
	if err == nil {
		return nil, ErrAlreadyCompleted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing completion: %w", err)
	}

	completion := &models.UserActivityCompletion{
		UserID:         userID,
		ActivityID:     activityID,
		CompletionDate: calendar.Midnight(completionDate),
	}

	if err := s.completionRepo.Create(completion); err != nil {
		return nil, fmt.Errorf("failed to create completion: %w", err)
	}

	return completion, nil
}

// findEnrollment resolves the user's active enrollment and its program.
func (s *PlanService) findEnrollment(userID, programID uint64) (*models.UserProgress, *models.Program, error) {
	progress, err := s.progressRepo.FindActive(userID, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEnrollmentNotFound
		}
		return nil, nil, fmt.Errorf("failed to find enrollment: %w", err)
	}

	program, err := s.programRepo.FindByID(programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProgramNotFound
		}
		return nil, nil, fmt.Errorf("failed to find program: %w", err)
	}

	return progress, program, nil
}

// buildDayPlan runs the per-day aggregation shared by day and week plans.
func (s *PlanService) buildDayPlan(userID, programID uint64, date time.Time, dayNumber int) (*dto.DayPlan, error) {
	activities, err := s.activityRepo.ListForDay(programID, dayNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	completions, err := s.completionRepo.ListForDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}

	plan := dto.NewDayPlan(date, dayNumber, activities, completions)
	return &plan, nil
}
