package handler

import (
	"errors"
	"net/http"

	"gamesrank/backend/internal/auth"
	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"
	"gamesrank/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email" example:"ann@example.com"`
	Name     string `json:"name" binding:"required,max=100" example:"Ann"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required" example:"ann@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse carries a freshly issued JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID            uint   `json:"id" example:"1"`
	Email         string `json:"email" example:"ann@example.com"`
	Name          string `json:"name" example:"Ann"`
	Role          string `json:"role" example:"user"`
	IsStaff       bool   `json:"is_staff"`
	RankingsCount int64  `json:"rankings_count"`
	RatingsCount  int64  `json:"ratings_count"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user with the "user" role and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := auth.CreateAccount(c.Request.Context(), h.Users, auth.NewAccount{
		Email:    input.Email,
		Name:     input.Name,
		Password: input.Password,
		Role:     models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		if errors.Is(err, auth.ErrWeakPassword) || errors.Is(err, auth.ErrPasswordTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "Failed to create user", err)
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		h.internalError(c, "Failed to generate token", err)
		return
	}

	h.Log.Info("User registered", zap.Uint("user_id", user.ID))
	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      403  {object}  ErrorResponse "Account disabled"
// @Failure      429  {object}  ErrorResponse "Too many attempts"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := auth.Authenticate(c.Request.Context(), h.Users, input.Email, input.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	case errors.Is(err, auth.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
		return
	case err != nil:
		h.internalError(c, "Failed to log in", err)
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		h.internalError(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// endregion

// region --- User Handlers ---

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the private profile of the authenticated user with activity counts.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	user := currentUser(c)
	ctx := c.Request.Context()

	rankings, err := h.Rankings.CountByUser(ctx, user.ID)
	if err != nil {
		h.internalError(c, "Failed to count rankings", err)
		return
	}
	ratings, err := h.Ratings.CountByUser(ctx, user.ID)
	if err != nil {
		h.internalError(c, "Failed to count ratings", err)
		return
	}

	c.JSON(http.StatusOK, PrivateUserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role,
		IsStaff:       user.IsStaff,
		RankingsCount: rankings,
		RatingsCount:  ratings,
	})
}

// endregion
