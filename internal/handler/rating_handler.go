package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gamesrank/backend/internal/hub"
	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

type RatingInput struct {
	GameID  int    `json:"game_id" binding:"required,min=1" example:"224517"`
	Stars   int    `json:"stars" example:"5"`
	Comment string `json:"comment" binding:"max=2000" example:"Great economic game"`
}

type SaveRatingResponse struct {
	Status  string `json:"status" example:"success"`
	Created bool   `json:"created"`
	Message string `json:"message" example:"Rating saved"`
}

// MyRatingResponse reports the caller's rating of a game. Stars and comment are
// omitted when exists is false.
type MyRatingResponse struct {
	Exists  bool   `json:"exists"`
	Stars   int    `json:"stars,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// endregion

// SaveRating godoc
// @Summary      Rate a game
// @Description  Creates or replaces the caller's star rating and comment for a game.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RatingInput true "Rating"
// @Success      200 {object} SaveRatingResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /ratings [post]
func (h *Handler) SaveRating(c *gin.Context) {
	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Stars < models.MinStars || input.Stars > models.MaxStars {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("stars must be between %d and %d", models.MinStars, models.MaxStars)})
		return
	}
	ctx := c.Request.Context()
	user := currentUser(c)

	if _, err := h.Games.FindByBGGID(ctx, input.GameID); err != nil {
		h.notFoundOr(c, err, "Game not found", "Failed to retrieve game")
		return
	}

	rating := models.Rating{
		GameID:   input.GameID,
		UserID:   user.ID,
		UserName: user.Name,
		Stars:    input.Stars,
		Comment:  strings.TrimSpace(input.Comment),
	}
	created, err := h.Ratings.Upsert(ctx, &rating)
	if err != nil {
		h.internalError(c, "Failed to save rating", err)
		return
	}

	message := "Rating updated"
	if created {
		message = "Rating saved"
	}

	h.Metrics.RatingSaved(created)
	h.Hub.Publish(hub.EventRatingSaved, gin.H{
		"game_id": rating.GameID,
		"user":    user.Name,
		"stars":   rating.Stars,
		"created": created,
	})
	h.Log.Debug("Rating saved", zap.Uint("user_id", user.ID), zap.Int("game_id", rating.GameID), zap.Bool("created", created))
	c.JSON(http.StatusOK, SaveRatingResponse{Status: "success", Created: created, Message: message})
}

// GetMyRating godoc
// @Summary      Get my rating of a game
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        gameID path int true "BGG id"
// @Success      200 {object} MyRatingResponse
// @Router       /ratings/{gameID} [get]
func (h *Handler) GetMyRating(c *gin.Context) {
	gameID, ok := parseGameID(c.Param("gameID"))
	if !ok {
		c.JSON(http.StatusOK, MyRatingResponse{Exists: false})
		return
	}

	rating, err := h.Ratings.Find(c.Request.Context(), currentUser(c).ID, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, MyRatingResponse{Exists: false})
			return
		}
		h.internalError(c, "Failed to retrieve rating", err)
		return
	}

	c.JSON(http.StatusOK, MyRatingResponse{Exists: true, Stars: rating.Stars, Comment: rating.Comment})
}

// DeleteRating godoc
// @Summary      Moderate a rating
// @Description  Deletes any user's rating.
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Rating ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Invalid rating ID"
// @Failure      404 {object} ErrorResponse "Rating not found"
// @Router       /admin/ratings/{id} [delete]
func (h *Handler) DeleteRating(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	if err := h.Ratings.Delete(c.Request.Context(), id); err != nil {
		h.notFoundOr(c, err, "Rating not found", "Failed to delete rating")
		return
	}

	h.Log.Info("Rating moderated", zap.String("rating_id", id.Hex()), zap.Uint("admin_id", currentUser(c).ID))
	h.Hub.Publish(hub.EventRatingDeleted, gin.H{"rating_id": id.Hex()})
	c.JSON(http.StatusOK, MessageResponse{Message: "Rating deleted"})
}
