package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prodigylabs/programs-api/internal/database"
	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/prodigylabs/programs-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type programTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupProgramTestEnv(t *testing.T) programTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Program{},
		&models.Activity{},
		&models.UserProgress{},
		&models.UserActivityCompletion{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	programRepo := repository.NewProgramRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	programHandler := NewProgramHandler(programRepo, activityRepo)
	activityHandler := NewActivityHandler(activityRepo, programRepo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/programs/", programHandler.CreateProgram)
	api.GET("/programs/", programHandler.ListPrograms)
	api.GET("/programs/:id", programHandler.GetProgram)
	api.PUT("/programs/:id", programHandler.UpdateProgram)
	api.DELETE("/programs/:id", programHandler.DeleteProgram)
	api.GET("/programs/:id/activities", programHandler.ListProgramActivities)
	api.POST("/activities/", activityHandler.CreateActivity)
	api.GET("/activities/:id", activityHandler.GetActivity)
	api.PUT("/activities/:id", activityHandler.UpdateActivity)
	api.DELETE("/activities/:id", activityHandler.DeleteActivity)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return programTestEnv{db: db, router: router}
}

func (env programTestEnv) request(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestCreateProgram_DefaultsDuration(t *testing.T) {
	env := setupProgramTestEnv(t)

	w := env.request(t, "POST", "/api/v1/programs/", map[string]interface{}{
		"name":        "Meditation",
		"description": "A mindfulness journey",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var program models.Program
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &program))
	require.Equal(t, "Meditation", program.Name)
	require.Equal(t, 30, program.DurationDays)
}

func TestCreateProgram_MissingName(t *testing.T) {
	env := setupProgramTestEnv(t)

	w := env.request(t, "POST", "/api/v1/programs/", map[string]interface{}{
		"description": "No name",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "INVALID_INPUT", response.Code)
	require.Equal(t, "Invalid request body", response.Message)
	require.Contains(t, response.Details, "Name")
}

func TestGetProgram_NotFound(t *testing.T) {
	env := setupProgramTestEnv(t)

	w := env.request(t, "GET", "/api/v1/programs/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPrograms_Pagination(t *testing.T) {
	env := setupProgramTestEnv(t)

	for i := 0; i < 5; i++ {
		program := &models.Program{Name: fmt.Sprintf("Program %d", i), DurationDays: 30}
		require.NoError(t, env.db.Create(program).Error)
	}

	w := env.request(t, "GET", "/api/v1/programs/?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Programs   []models.Program `json:"programs"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Programs, 2)
	require.Equal(t, int64(5), response.Pagination.Total)

	// The last page carries the remainder
	w = env.request(t, "GET", "/api/v1/programs/?page=3&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Programs, 1)
	require.Equal(t, 3, response.Pagination.Page)
	require.Equal(t, int64(5), response.Pagination.Total)
}

func TestUpdateProgram_PartialFields(t *testing.T) {
	env := setupProgramTestEnv(t)

	program := &models.Program{Name: "Old Name", Description: "Old", DurationDays: 30}
	require.NoError(t, env.db.Create(program).Error)

	w := env.request(t, "PUT", fmt.Sprintf("/api/v1/programs/%d", program.ID), map[string]interface{}{
		"name": "New Name",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Program
	require.NoError(t, env.db.First(&updated, program.ID).Error)
	require.Equal(t, "New Name", updated.Name)
	require.Equal(t, "Old", updated.Description)
	require.Equal(t, 30, updated.DurationDays)
}

func TestDeleteProgram_RemovesActivities(t *testing.T) {
	env := setupProgramTestEnv(t)

	program := &models.Program{Name: "Doomed", DurationDays: 30}
	require.NoError(t, env.db.Create(program).Error)
	activity := &models.Activity{ProgramID: program.ID, Title: "A", DayNumber: 1, DurationMinutes: 5}
	require.NoError(t, env.db.Create(activity).Error)

	w := env.request(t, "DELETE", fmt.Sprintf("/api/v1/programs/%d", program.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var programCount, activityCount int64
	env.db.Model(&models.Program{}).Count(&programCount)
	env.db.Model(&models.Activity{}).Count(&activityCount)
	require.Equal(t, int64(0), programCount)
	require.Equal(t, int64(0), activityCount)
}

func TestCreateActivity_Success(t *testing.T) {
	env := setupProgramTestEnv(t)

	program := &models.Program{Name: "Meditation", DurationDays: 30}
	require.NoError(t, env.db.Create(program).Error)

	w := env.request(t, "POST", "/api/v1/activities/", map[string]interface{}{
		"program_id": program.ID,
		"title":      "Breathing",
		"day_number": 3,
		"category":   "Mindfulness",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var activity models.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activity))
	require.Equal(t, 3, activity.DayNumber)
	require.Equal(t, 5, activity.DurationMinutes) // default
}

func TestCreateActivity_DayOutsideProgramDuration(t *testing.T) {
	env := setupProgramTestEnv(t)

	program := &models.Program{Name: "Short", DurationDays: 10}
	require.NoError(t, env.db.Create(program).Error)

	w := env.request(t, "POST", "/api/v1/activities/", map[string]interface{}{
		"program_id": program.ID,
		"title":      "Too Late",
		"day_number": 11,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateActivity_UnknownProgram(t *testing.T) {
	env := setupProgramTestEnv(t)

	w := env.request(t, "POST", "/api/v1/activities/", map[string]interface{}{
		"program_id": 99999,
		"title":      "Orphan",
		"day_number": 1,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProgramActivities_OrderedByDay(t *testing.T) {
	env := setupProgramTestEnv(t)

	program := &models.Program{Name: "Meditation", DurationDays: 30}
	require.NoError(t, env.db.Create(program).Error)
	for _, day := range []int{5, 1, 3} {
		activity := &models.Activity{ProgramID: program.ID, Title: fmt.Sprintf("Day %d", day), DayNumber: day, DurationMinutes: 5}
		require.NoError(t, env.db.Create(activity).Error)
	}

	w := env.request(t, "GET", fmt.Sprintf("/api/v1/programs/%d/activities", program.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Activities []models.Activity `json:"activities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Activities, 3)
	require.Equal(t, 1, response.Activities[0].DayNumber)
	require.Equal(t, 3, response.Activities[1].DayNumber)
	require.Equal(t, 5, response.Activities[2].DayNumber)
}

func TestUpdateActivity_DayValidatedAgainstProgram(t *testing.T) {
	env := setupProgramTestEnv(t)

	program := &models.Program{Name: "Short", DurationDays: 10}
	require.NoError(t, env.db.Create(program).Error)
	activity := &models.Activity{ProgramID: program.ID, Title: "A", DayNumber: 1, DurationMinutes: 5}
	require.NoError(t, env.db.Create(activity).Error)

	w := env.request(t, "PUT", fmt.Sprintf("/api/v1/activities/%d", activity.ID), map[string]interface{}{
		"day_number": 11,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, "PUT", fmt.Sprintf("/api/v1/activities/%d", activity.ID), map[string]interface{}{
		"day_number": 7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Activity
	require.NoError(t, env.db.First(&updated, activity.ID).Error)
	require.Equal(t, 7, updated.DayNumber)
}

func TestDeleteActivity(t *testing.T) {
	env := setupProgramTestEnv(t)

	program := &models.Program{Name: "Meditation", DurationDays: 30}
	require.NoError(t, env.db.Create(program).Error)
	activity := &models.Activity{ProgramID: program.ID, Title: "A", DayNumber: 1, DurationMinutes: 5}
	require.NoError(t, env.db.Create(activity).Error)

	w := env.request(t, "DELETE", fmt.Sprintf("/api/v1/activities/%d", activity.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, "GET", fmt.Sprintf("/api/v1/activities/%d", activity.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
