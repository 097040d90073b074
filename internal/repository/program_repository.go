package repository

import (
	"github.com/prodigylabs/programs-api/internal/database"
	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/prodigylabs/programs-api/internal/utils"
	"gorm.io/gorm"
)

// GormProgramRepository is a GORM implementation of ProgramRepository
type GormProgramRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &GormProgramRepository{db: db}
}

// Create creates a new program
func (r *GormProgramRepository) Create(program *models.Program) error {
	return r.db.Create(program).Error
}

// FindByID finds a program by ID with optional preloading
func (r *GormProgramRepository) FindByID(id uint64, preload ...string) (*models.Program, error) {
	var program models.Program
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&program, id).Error; err != nil {
		return nil, err
	}

	return &program, nil
}

// List retrieves programs with pagination
func (r *GormProgramRepository) List(params utils.PaginationParams) ([]models.Program, int64, error) {
	var programs []models.Program

	query := r.db.Model(&models.Program{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("programs.created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&programs).Error; err != nil {
		return nil, 0, err
	}

	return programs, total, nil
}

// Update updates a program
func (r *GormProgramRepository) Update(program *models.Program) error {
	return r.db.Save(program).Error
}

// Delete deletes a program together with its activities
func (r *GormProgramRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("program_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Program{}, id).Error
	})
}
