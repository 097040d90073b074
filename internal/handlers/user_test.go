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

func setupUserTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.SetDB(db)

	handler := NewUserHandler(repository.NewUserRepository(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/users/", handler.CreateUser)
	router.GET("/api/v1/users/:user_id", handler.GetUser)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, router
}

func postUser(t *testing.T, router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/users/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateUser_Success(t *testing.T) {
	_, router := setupUserTestEnv(t)

	w := postUser(t, router, map[string]interface{}{
		"username": "alice.smith",
		"email":    "alice.smith@example.com",
		"address":  "12 Elm Street",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "alice.smith", user.Username)
	require.NotNil(t, user.Address)
	require.Equal(t, "12 Elm Street", *user.Address)
}

func TestCreateUser_DuplicateUsernameOrEmail(t *testing.T) {
	_, router := setupUserTestEnv(t)

	w := postUser(t, router, map[string]interface{}{
		"username": "alice.smith",
		"email":    "alice.smith@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postUser(t, router, map[string]interface{}{
		"username": "alice.smith",
		"email":    "other@example.com",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	w = postUser(t, router, map[string]interface{}{
		"username": "someone.else",
		"email":    "alice.smith@example.com",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	_, router := setupUserTestEnv(t)

	w := postUser(t, router, map[string]interface{}{
		"username": "bob.johnson",
		"email":    "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser(t *testing.T) {
	db, router := setupUserTestEnv(t)

	user := &models.User{Username: "carol", Email: "carol@example.com"}
	require.NoError(t, db.Create(user).Error)

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/v1/users/%d", user.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, user.Username, fetched.Username)

	req = httptest.NewRequest("GET", "/api/v1/users/99999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
