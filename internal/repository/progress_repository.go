package repository

import (
	"github.com/prodigylabs/programs-api/internal/models"
	"gorm.io/gorm"
)

// GormProgressRepository is a GORM implementation of ProgressRepository
type GormProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &GormProgressRepository{db: db}
}

// Create creates a new enrollment
func (r *GormProgressRepository) Create(progress *models.UserProgress) error {
	return r.db.Create(progress).Error
}

// FindActive finds the active enrollment for a (user, program) pair
func (r *GormProgressRepository) FindActive(userID, programID uint64) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.db.
		Where("user_id = ? AND program_id = ? AND is_active = ?", userID, programID, true).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Update updates an enrollment
func (r *GormProgressRepository) Update(progress *models.UserProgress) error {
	return r.db.Save(progress).Error
}
