package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gamesrank/backend/internal/auth"
	"gamesrank/backend/internal/hub"
	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

type AdminCreateUserInput struct {
	Email    string `json:"email" binding:"required,email" example:"mod@example.com"`
	Name     string `json:"name" binding:"required,max=100" example:"Moderator"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin" example:"admin"`
}

type SetActiveInput struct {
	Active *bool `json:"active" binding:"required" example:"false"`
}

type AdminUserResponse struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"is_active"`
	IsStaff       bool      `json:"is_staff"`
	CreatedAt     time.Time `json:"created_at"`
	RankingsCount int64     `json:"rankings_count"`
	RatingsCount  int64     `json:"ratings_count"`
}

// PaginatedAdminUserResponse defines the structure for a paginated list of users.
type PaginatedAdminUserResponse struct {
	Data []AdminUserResponse `json:"data"`
	Meta PaginationMeta      `json:"meta"`
}

type AdminRatingResponse struct {
	ID        string    `json:"id"`
	GameID    int       `json:"game_id"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserActivityResponse struct {
	User     AdminUserResponse     `json:"user"`
	Rankings []RankingResponse     `json:"rankings"`
	Ratings  []AdminRatingResponse `json:"ratings"`
}

// endregion

func (h *Handler) buildAdminUserResponse(ctx context.Context, user models.User) (AdminUserResponse, error) {
	rankings, err := h.Rankings.CountByUser(ctx, user.ID)
	if err != nil {
		return AdminUserResponse{}, err
	}
	ratings, err := h.Ratings.CountByUser(ctx, user.ID)
	if err != nil {
		return AdminUserResponse{}, err
	}
	return AdminUserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role,
		IsActive:      user.IsActive,
		IsStaff:       user.IsStaff,
		CreatedAt:     user.CreatedAt,
		RankingsCount: rankings,
		RatingsCount:  ratings,
	}, nil
}

func parseUserID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ListUsers godoc
// @Summary      List users
// @Description  Lists users with their ranking and rating counts, optionally filtered by email or name.
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query for email or name"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedAdminUserResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Router       /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := pageParams(c, defaultPageSize)
	ctx := c.Request.Context()

	users, total, err := h.Users.List(ctx, c.Query("q"), page, limit)
	if err != nil {
		h.internalError(c, "Failed to retrieve users", err)
		return
	}

	response := make([]AdminUserResponse, 0, len(users))
	for _, u := range users {
		item, err := h.buildAdminUserResponse(ctx, u)
		if err != nil {
			h.internalError(c, "Failed to count user activity", err)
			return
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, total, page, limit))
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Creates an account with any role. Admins are also staff.
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AdminCreateUserInput true "User Info"
// @Success      201 {object} AdminUserResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "Email already registered"
// @Router       /admin/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var input AdminCreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := auth.CreateAccount(c.Request.Context(), h.Users, auth.NewAccount{
		Email:    input.Email,
		Name:     input.Name,
		Password: input.Password,
		Role:     input.Role,
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

	h.Log.Info("User created by admin",
		zap.Uint("user_id", user.ID),
		zap.String("role", user.Role),
		zap.Uint("admin_id", currentUser(c).ID))
	h.Hub.Publish(hub.EventUserChanged, gin.H{"action": "created", "user_id": user.ID})
	c.JSON(http.StatusCreated, AdminUserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		IsActive:  user.IsActive,
		IsStaff:   user.IsStaff,
		CreatedAt: user.CreatedAt,
	})
}

// SetUserActive godoc
// @Summary      Activate or deactivate a user
// @Description  Deactivated users can no longer log in or use their tokens. Admins cannot deactivate themselves.
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int            true "User ID"
// @Param        input body SetActiveInput true "New state"
// @Success      200 {object} AdminUserResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /admin/users/{id}/active [patch]
func (h *Handler) SetUserActive(c *gin.Context) {
	id, ok := parseUserID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	var input SetActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	admin := currentUser(c)
	if id == admin.ID && !*input.Active {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot deactivate your own account"})
		return
	}
	ctx := c.Request.Context()

	if err := h.Users.SetActive(ctx, id, *input.Active); err != nil {
		h.notFoundOr(c, err, "User not found", "Failed to update user")
		return
	}
	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		h.notFoundOr(c, err, "User not found", "Failed to retrieve user")
		return
	}
	response, err := h.buildAdminUserResponse(ctx, *user)
	if err != nil {
		h.internalError(c, "Failed to count user activity", err)
		return
	}

	h.Log.Info("User active state changed",
		zap.Uint("user_id", id),
		zap.Bool("active", *input.Active),
		zap.Uint("admin_id", admin.ID))
	h.Hub.Publish(hub.EventUserChanged, gin.H{"action": "active", "user_id": id, "active": *input.Active})
	c.JSON(http.StatusOK, response)
}

// GetUserActivity godoc
// @Summary      User activity
// @Description  Returns a user's rankings and ratings.
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} UserActivityResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /admin/users/{id}/activity [get]
func (h *Handler) GetUserActivity(c *gin.Context) {
	id, ok := parseUserID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	ctx := c.Request.Context()

	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		h.notFoundOr(c, err, "User not found", "Failed to retrieve user")
		return
	}
	rankings, err := h.Rankings.ListByUser(ctx, id)
	if err != nil {
		h.internalError(c, "Failed to retrieve rankings", err)
		return
	}
	ratings, err := h.Ratings.ListByUser(ctx, id)
	if err != nil {
		h.internalError(c, "Failed to retrieve ratings", err)
		return
	}

	response := UserActivityResponse{
		User: AdminUserResponse{
			ID:            user.ID,
			Email:         user.Email,
			Name:          user.Name,
			Role:          user.Role,
			IsActive:      user.IsActive,
			IsStaff:       user.IsStaff,
			CreatedAt:     user.CreatedAt,
			RankingsCount: int64(len(rankings)),
			RatingsCount:  int64(len(ratings)),
		},
		Rankings: make([]RankingResponse, 0, len(rankings)),
		Ratings:  make([]AdminRatingResponse, 0, len(ratings)),
	}
	for _, r := range rankings {
		response.Rankings = append(response.Rankings, newRankingResponse(r))
	}
	for _, r := range ratings {
		response.Ratings = append(response.Ratings, AdminRatingResponse{
			ID:        r.ID.Hex(),
			GameID:    r.GameID,
			Stars:     r.Stars,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}
