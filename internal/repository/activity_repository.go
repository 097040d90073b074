package repository

import (
	"github.com/prodigylabs/programs-api/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create creates a new activity
func (r *GormActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// FindByID finds an activity by ID
func (r *GormActivityRepository) FindByID(id uint64) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListByProgram lists all activities of a program ordered by day number
func (r *GormActivityRepository) ListByProgram(programID uint64) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.
		Where("program_id = ?", programID).
		Order("day_number ASC, id ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// ListForDay lists the activities scheduled on a specific program day
func (r *GormActivityRepository) ListForDay(programID uint64, dayNumber int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.
		Where("program_id = ? AND day_number = ?", programID, dayNumber).
		Order("id ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// CountThroughDay counts activities scheduled on or before a program day
func (r *GormActivityRepository) CountThroughDay(programID uint64, dayNumber int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).
		Where("program_id = ? AND day_number <= ?", programID, dayNumber).
		Count(&count).Error
	return count, err
}

// Update updates an activity
func (r *GormActivityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

// Delete deletes an activity
func (r *GormActivityRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Activity{}, id).Error
}
