package repository

import (
	"time"

	"github.com/prodigylabs/programs-api/internal/calendar"
	"github.com/prodigylabs/programs-api/internal/models"
	"gorm.io/gorm"
)

// GormCompletionRepository is a GORM implementation of CompletionRepository
type GormCompletionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new CompletionRepository
func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &GormCompletionRepository{db: db}
}

// Create creates a new completion record
func (r *GormCompletionRepository) Create(completion *models.UserActivityCompletion) error {
	completion.CompletionDate = calendar.Midnight(completion.CompletionDate)
	return r.db.Create(completion).Error
}

// ListForDate lists a user's completions whose completion date falls on the
// given calendar day, using a half-open [date, date+24h) window.
func (r *GormCompletionRepository) ListForDate(userID uint64, date time.Time) ([]models.UserActivityCompletion, error) {
	dayStart := calendar.Midnight(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var completions []models.UserActivityCompletion
	err := r.db.
		Where("user_id = ? AND completion_date >= ? AND completion_date < ?", userID, dayStart, dayEnd).
		Find(&completions).Error
	if err != nil {
		return nil, err
	}
	return completions, nil
}

// FindForActivityOnDate finds a user's completion of an activity on a
// calendar day, if any
func (r *GormCompletionRepository) FindForActivityOnDate(userID, activityID uint64, date time.Time) (*models.UserActivityCompletion, error) {
	dayStart := calendar.Midnight(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var completion models.UserActivityCompletion
	err := r.db.
		Where("user_id = ? AND activity_id = ? AND completion_date >= ? AND completion_date < ?",
			userID, activityID, dayStart, dayEnd).
		First(&completion).Error
	if err != nil {
		return nil, err
	}
	return &completion, nil
}

// CountForProgram counts a user's lifetime completions of activities
// belonging to a program
func (r *GormCompletionRepository) CountForProgram(userID, programID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserActivityCompletion{}).
		Joins("JOIN activities ON activities.id = user_activity_completions.activity_id").
		Where("user_activity_completions.user_id = ? AND activities.program_id = ?", userID, programID).
		Count(&count).Error
	return count, err
}
