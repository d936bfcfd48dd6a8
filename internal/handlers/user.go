package handlers

import (
	"net/http"

	"github.com/HenokhIS/You-Do/internal/dto"
	apierrors "github.com/HenokhIS/You-Do/internal/errors"
	"github.com/HenokhIS/You-Do/internal/repository"
	"github.com/HenokhIS/You-Do/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler serves CRUD on user accounts. Hashing goes through the auth
// service so the bcrypt policy lives in one place.
type UserHandler struct {
	userRepo    repository.UserRepository
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userRepo:    userRepo,
		authService: authService,
	}
}

// Create adds a user with a hashed password.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Nama:     req.Nama,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// List returns all users. Password hashes are never serialized.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userRepo.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns one user by ID.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update applies a partial update; a supplied password is re-hashed.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "User not found")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Nama != nil {
		user.Nama = *req.Nama
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := h.authService.HashPassword(*req.Password)
		if err != nil {
			apierrors.InternalError(c, "")
			return
		}
		user.PasswordHash = hash
	}

	if err := h.userRepo.Update(user); err != nil {
		if repository.IsDuplicateKeyError(err) {
			apierrors.Conflict(c, "Email already registered")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}

	if _, err := h.userRepo.FindByID(id); err != nil {
		apierrors.NotFound(c, "User not found")
		return
	}

	if err := h.userRepo.Delete(id); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
