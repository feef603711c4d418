package handler

import (
	"errors"
	"math"
	"net/http"

	"gamesrank/backend/internal/catalog"
	"gamesrank/backend/internal/hub"
	"gamesrank/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// region --- DTOs ---

type GameResponse struct {
	ID             int     `json:"id" example:"224517"`
	Name           string  `json:"name" example:"Brass: Birmingham"`
	Description    string  `json:"description"`
	YearPublished  int     `json:"year_published" example:"2018"`
	GameWeight     float64 `json:"game_weight" example:"3.9"`
	AvgRating      float64 `json:"avg_rating" example:"8.6"`
	MinPlayers     int     `json:"min_players" example:"2"`
	MaxPlayers     int     `json:"max_players" example:"4"`
	NumUserRatings int     `json:"num_user_ratings"`
	NumExpansions  int     `json:"num_expansions"`
	Family         string  `json:"family,omitempty"`
	ImagePath      string  `json:"image_path,omitempty"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:             game.BGGID,
		Name:           game.Name,
		Description:    game.Description,
		YearPublished:  game.YearPublished,
		GameWeight:     game.GameWeight,
		AvgRating:      game.AvgRating,
		MinPlayers:     game.MinPlayers,
		MaxPlayers:     game.MaxPlayers,
		NumUserRatings: game.NumUserRatings,
		NumExpansions:  game.NumExpansions,
		Family:         game.Family,
		ImagePath:      game.ImagePath,
	}
}

func newGameResponses(games []models.Game) []GameResponse {
	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, newGameResponse(g))
	}
	return out
}

// RatingSummary aggregates the in-app star ratings of a game.
type RatingSummary struct {
	AverageStars *float64 `json:"average_stars"`
	Votes        int      `json:"votes"`
}

type GameDetailResponse struct {
	GameResponse
	Rating RatingSummary `json:"rating"`
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type CommentResponse struct {
	User    string `json:"user" example:"Ann"`
	Comment string `json:"comment" example:"Great economic game"`
	Stars   int    `json:"stars" example:"5"`
}

type CommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

type DeleteGameResponse struct {
	Message        string `json:"message" example:"Game deleted"`
	RatingsDeleted int64  `json:"ratings_deleted"`
}

type DeleteAllGamesResponse struct {
	Deleted int64 `json:"deleted"`
}

// endregion

// region --- Public Handlers ---

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated, name-ordered list of games with optional filters.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        name        query     string  false  "Case-insensitive substring of the name"
// @Param        year        query     int     false  "Exact publication year"
// @Param        min_players query     int     false  "Games whose minimum player count is at least this"
// @Param        max_players query     int     false  "Games whose maximum player count is at most this"
// @Param        page        query     int     false  "Page number" default(1)
// @Param        limit       query     int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Failure      400 {object} ErrorResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	filter, err := gameFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, limit := pageParams(c, defaultPageSize)

	games, total, err := h.Games.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.internalError(c, "Failed to retrieve games", err)
		return
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(newGameResponses(games), total, page, limit))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves a game by its BGG id together with its star rating summary.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "BGG id"
// @Success      200 {object} GameDetailResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, ok := parseGameID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	game, err := h.Games.FindByBGGID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOr(c, err, "Game not found", "Failed to retrieve game")
		return
	}

	ratings, err := h.Ratings.ListByGame(c.Request.Context(), id, false)
	if err != nil {
		h.internalError(c, "Failed to retrieve ratings", err)
		return
	}

	summary := RatingSummary{Votes: len(ratings)}
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Stars
		}
		avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
		summary.AverageStars = &avg
	}

	c.JSON(http.StatusOK, GameDetailResponse{GameResponse: newGameResponse(*game), Rating: summary})
}

// GetGameComments godoc
// @Summary      List comments of a game
// @Description  Returns the non-empty comments left with ratings of a game, newest first.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "BGG id"
// @Success      200 {object} CommentsResponse
// @Router       /games/{id}/comments [get]
func (h *Handler) GetGameComments(c *gin.Context) {
	id, ok := parseGameID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusOK, CommentsResponse{Comments: []CommentResponse{}})
		return
	}

	ratings, err := h.Ratings.ListByGame(c.Request.Context(), id, true)
	if err != nil {
		h.internalError(c, "Failed to retrieve comments", err)
		return
	}

	comments := make([]CommentResponse, 0, len(ratings))
	for _, r := range ratings {
		comments = append(comments, CommentResponse{User: r.UserName, Comment: r.Comment, Stars: r.Stars})
	}
	c.JSON(http.StatusOK, CommentsResponse{Comments: comments})
}

// endregion

// region --- Admin Handlers ---

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game, removes it from every category and deletes its ratings. Rankings keep their snapshots.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "BGG id"
// @Success      200 {object} DeleteGameResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := parseGameID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	ctx := c.Request.Context()

	if _, err := h.Games.FindByBGGID(ctx, id); err != nil {
		h.notFoundOr(c, err, "Game not found", "Failed to retrieve game")
		return
	}

	// Dependents first; the game document is removed last.
	if err := h.Categories.RemoveGameEverywhere(ctx, id); err != nil {
		h.internalError(c, "Failed to remove game from categories", err)
		return
	}
	deleted, err := h.Ratings.DeleteByGame(ctx, id)
	if err != nil {
		h.internalError(c, "Failed to delete ratings", err)
		return
	}
	if err := h.Games.Delete(ctx, id); err != nil {
		h.notFoundOr(c, err, "Game not found", "Failed to delete game")
		return
	}

	h.Log.Info("Game deleted", zap.Int("game_id", id), zap.Int64("ratings_deleted", deleted))
	h.Hub.Publish(hub.EventCatalogChanged, gin.H{"action": "deleted", "game_id": id})
	c.JSON(http.StatusOK, DeleteGameResponse{Message: "Game deleted", RatingsDeleted: deleted})
}

// DeleteAllGames godoc
// @Summary      Delete the whole catalog
// @Description  Deletes every game document. Categories, rankings and ratings are left as they are.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} DeleteAllGamesResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/games [delete]
func (h *Handler) DeleteAllGames(c *gin.Context) {
	deleted, err := h.Games.DeleteAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to delete games", err)
		return
	}

	h.Log.Warn("Catalog cleared", zap.Int64("deleted", deleted), zap.Uint("admin_id", currentUser(c).ID))
	h.Hub.Publish(hub.EventCatalogChanged, gin.H{"action": "cleared", "deleted": deleted})
	c.JSON(http.StatusOK, DeleteAllGamesResponse{Deleted: deleted})
}

// ImportGames godoc
// @Summary      Import the catalog from a file
// @Description  Replaces the catalog with the rows of an uploaded CSV or XLSX file.
// @Tags         admin-games
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "CSV or XLSX file"
// @Success      200 {object} catalog.ImportResult
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/games/import [post]
func (h *Handler) ImportGames(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required in the 'file' field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.Catalog.Import(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, catalog.ErrUnsupportedFormat) ||
			errors.Is(err, catalog.ErrNoRows) ||
			errors.Is(err, catalog.ErrInvalidFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "Failed to import catalog", err)
		return
	}

	h.Metrics.CatalogLoaded("file", result.Imported)
	h.Hub.Publish(hub.EventCatalogChanged, gin.H{"action": "imported", "imported": result.Imported})
	c.JSON(http.StatusOK, result)
}

// SyncGames godoc
// @Summary      Sync the catalog from the external API
// @Description  Fetches the configured game listing and upserts every game by BGG id.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} catalog.SyncResult
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      502 {object} ErrorResponse "Upstream failure"
// @Failure      503 {object} ErrorResponse "Not configured"
// @Router       /admin/games/sync [post]
func (h *Handler) SyncGames(c *gin.Context) {
	result, err := h.Catalog.Sync(c.Request.Context())
	if errors.Is(err, catalog.ErrSourceNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	h.RecordSync(result, err)

	switch {
	case errors.Is(err, catalog.ErrUpstream):
		h.Log.Warn("Catalog sync failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.internalError(c, "Failed to sync catalog", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RecordSync reports the outcome of a catalog sync, manual or scheduled, to metrics
// and the activity feed.
func (h *Handler) RecordSync(result catalog.SyncResult, err error) {
	h.Metrics.SyncRun(err)
	if err != nil {
		h.Hub.Publish(hub.EventSyncFailed, gin.H{"error": err.Error()})
		return
	}
	h.Metrics.CatalogLoaded("api", result.Inserted+result.Updated)
	h.Hub.Publish(hub.EventCatalogChanged, gin.H{"action": "synced", "inserted": result.Inserted, "updated": result.Updated})
}

// endregion
