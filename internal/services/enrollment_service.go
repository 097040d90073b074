package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/prodigylabs/programs-api/internal/calendar"
	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/prodigylabs/programs-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyEnrolled = errors.New("user already has active progress for this program")
)

// EnrollmentService manages a user's enrollment lifecycle in programs.
type EnrollmentService struct {
	userRepo     repository.UserRepository
	programRepo  repository.ProgramRepository
	progressRepo repository.ProgressRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	userRepo repository.UserRepository,
	programRepo repository.ProgramRepository,
	progressRepo repository.ProgressRepository,
) *EnrollmentService {
	return &EnrollmentService{
		userRepo:     userRepo,
		programRepo:  programRepo,
		progressRepo: progressRepo,
	}
}

// EnrollInput represents input for enrolling a user in a program
type EnrollInput struct {
	UserID    uint64
	ProgramID uint64
	StartDate time.Time
}

// Enroll starts a program for a user. A user can have at most one active
// enrollment per program.
func (s *EnrollmentService) Enroll(input EnrollInput) (*models.UserProgress, error) {
	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.programRepo.FindByID(input.ProgramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to find program: %w", err)
	}

	_, err := s.progressRepo.FindActive(input.UserID, input.ProgramID)
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing enrollment: %w", err)
	}

	progress := &models.UserProgress{
		UserID:     input.UserID,
		ProgramID:  input.ProgramID,
		StartDate:  calendar.Midnight(input.StartDate),
		CurrentDay: 1,
		IsActive:   true,
	}

	if err := s.progressRepo.Create(progress); err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	return progress, nil
}

// Unenroll deactivates a user's active enrollment in a program.
func (s *EnrollmentService) Unenroll(userID, programID uint64) (*models.UserProgress, error) {
	progress, err := s.progressRepo.FindActive(userID, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to find enrollment: %w", err)
	}

	progress.IsActive = false
	if err := s.progressRepo.Update(progress); err != nil {
		return nil, fmt.Errorf("failed to deactivate enrollment: %w", err)
	}

	return progress, nil
}
