package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// TestCompletionCreate_NormalizesCompletionDate verifies the stored
// completion date is truncated to midnight UTC regardless of the input time.
func TestCompletionCreate_NormalizesCompletionDate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCompletionRepository(db)

	midnight := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `user_activity_completions`")).
		WithArgs(uint64(7), uint64(3), sqlmock.AnyArg(), midnight).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	completion := &models.UserActivityCompletion{
		UserID:         7,
		ActivityID:     3,
		CompletionDate: time.Date(2024, 1, 3, 15, 42, 7, 0, time.UTC),
	}
	require.NoError(t, repo.Create(completion))
	require.Equal(t, midnight, completion.CompletionDate)

	require.NoError(t, mock.ExpectationsWereMet())
}

// TestCompletionCountForProgram verifies the join against activities scoping
// the lifetime count to one program.
func TestCompletionCountForProgram(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCompletionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `user_activity_completions` JOIN activities ON activities.id = user_activity_completions.activity_id")).
		WithArgs(uint64(7), uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(4))

	count, err := repo.CountForProgram(7, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

// TestCompletionListForDate verifies the half-open date window.
func TestCompletionListForDate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCompletionRepository(db)

	dayStart := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows := sqlmock.NewRows([]string{"id", "user_id", "activity_id", "completed_at", "completion_date"}).
		AddRow(1, 7, 3, dayStart.Add(9*time.Hour), dayStart)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user_activity_completions` WHERE user_id = ? AND completion_date >= ? AND completion_date < ?")).
		WithArgs(uint64(7), dayStart, dayEnd).
		WillReturnRows(rows)

	completions, err := repo.ListForDate(7, dayStart.Add(13*time.Hour))
	require.NoError(t, err)
	require.Len(t, completions, 1)
	require.Equal(t, uint64(3), completions[0].ActivityID)

	require.NoError(t, mock.ExpectationsWereMet())
}
