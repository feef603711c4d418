// Package handler implements the HTTP API.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gamesrank/backend/internal/auth"
	"gamesrank/backend/internal/catalog"
	"gamesrank/backend/internal/hub"
	"gamesrank/backend/internal/metrics"
	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds the dependencies shared by every endpoint.
type Handler struct {
	Users      repository.UserRepository
	Games      repository.GameRepository
	Categories repository.CategoryRepository
	Rankings   repository.RankingRepository
	Ratings    repository.RatingRepository
	Catalog    *catalog.Service
	Hub        *hub.Hub
	Metrics    *metrics.Metrics
	Log        *zap.Logger
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse is returned by endpoints that only report success.
type MessageResponse struct {
	Message string `json:"message" example:"Done"`
}

// internalError logs err and answers 500 with a generic message.
func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	_ = c.Error(err)
	h.Log.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// notFoundOr answers 404 with notFoundMsg for repository.ErrNotFound and 500 otherwise.
func (h *Handler) notFoundOr(c *gin.Context, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	h.internalError(c, failMsg, err)
}

// currentUser returns the authenticated user. AuthMiddleware guarantees it is set.
func currentUser(c *gin.Context) *models.User {
	return auth.CurrentUser(c)
}

func parseObjectID(raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func parseGameID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// optionalInt parses an integer query parameter; absent or empty yields nil.
func optionalInt(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &v, nil
}

// gameFilter reads the catalog search parameters shared by the listing, the
// category candidate search and the ranking editor.
func gameFilter(c *gin.Context) (repository.GameFilter, error) {
	filter := repository.GameFilter{Name: c.Query("name")}
	var err error
	if filter.Year, err = optionalInt(c, "year"); err != nil {
		return filter, err
	}
	if filter.MinPlayers, err = optionalInt(c, "min_players"); err != nil {
		return filter, err
	}
	if filter.MaxPlayers, err = optionalInt(c, "max_players"); err != nil {
		return filter, err
	}
	return filter, nil
}
