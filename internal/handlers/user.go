package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/prodigylabs/programs-api/internal/errors"
	"github.com/prodigylabs/programs-api/internal/models"
	"github.com/prodigylabs/programs-api/internal/repository"
	"gorm.io/gorm"
)

// UserHandler coordinates user CRUD handlers.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// CreateUser creates a new user. Username and email are unique.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Username string  `json:"username" binding:"required,min=3,max=50"`
		Email    string  `json:"email" binding:"required,email"`
		Address  *string `json:"address"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	if _, err := h.userRepo.FindByUsername(req.Username); err == nil {
		apierrors.Conflict(c, "Username already taken")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		apierrors.InternalError(c, "Failed to check username")
		return
	}

	if _, err := h.userRepo.FindByEmail(req.Email); err == nil {
		apierrors.Conflict(c, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		apierrors.InternalError(c, "Failed to check email")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Address:  req.Address,
	}

	if err := h.userRepo.Create(&user); err != nil {
		// The unique indexes stay as the backstop for concurrent signups.
		apierrors.Conflict(c, "Username or email already taken")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser returns a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}
