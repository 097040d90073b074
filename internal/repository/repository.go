package repository

import (
	"time"

	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/prodigylabs/programs-api/internal/utils"
)

// ProgramRepository defines the interface for program data access
type ProgramRepository interface {
	// Create creates a new program
	Create(program *models.Program) error

	// FindByID finds a program by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Program, error)

	// List retrieves programs with pagination
	List(params utils.PaginationParams) ([]models.Program, int64, error)

	// Update updates a program
	Update(program *models.Program) error

	// Delete deletes a program together with its activities
	Delete(id uint64) error
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// Create creates a new activity
	Create(activity *models.Activity) error

	// FindByID finds an activity by ID
	FindByID(id uint64) (*models.Activity, error)

	// ListByProgram lists all activities of a program ordered by day number
	ListByProgram(programID uint64) ([]models.Activity, error)

	// ListForDay lists the activities scheduled on a specific program day
	ListForDay(programID uint64, dayNumber int) ([]models.Activity, error)

	// CountThroughDay counts activities scheduled on or before a program day
	CountThroughDay(programID uint64, dayNumber int) (int64, error)

	// Update updates an activity
	Update(activity *models.Activity) error

	// Delete deletes an activity
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// ProgressRepository defines the interface for enrollment data access
type ProgressRepository interface {
	// Create creates a new enrollment
	Create(progress *models.UserProgress) error

	// FindActive finds the active enrollment for a (user, program) pair
	FindActive(userID, programID uint64) (*models.UserProgress, error)

	// Update updates an enrollment
	Update(progress *models.UserProgress) error
}

// CompletionRepository defines the interface for completion data access
type CompletionRepository interface {
	// Create creates a new completion record
	Create(completion *models.UserActivityCompletion) error

	// ListForDate lists a user's completions whose completion date falls on
	// the given calendar day
	ListForDate(userID uint64, date time.Time) ([]models.UserActivityCompletion, error)

	// FindForActivityOnDate finds a user's completion of an activity on a
	// calendar day, if any
	FindForActivityOnDate(userID, activityID uint64, date time.Time) (*models.UserActivityCompletion, error)

	// CountForProgram counts a user's lifetime completions of activities
	// belonging to a program
	CountForProgram(userID, programID uint64) (int64, error)
}
