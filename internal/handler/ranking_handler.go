package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gamesrank/backend/internal/hub"
	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// editorPageSize is the page size of the game picker in the ranking editor.
const editorPageSize = 12

// region --- DTOs ---

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RankingResponse struct {
	ID           string                        `json:"id"`
	UserID       uint                          `json:"user_id"`
	UserName     string                        `json:"user_name"`
	CategoryID   string                        `json:"category_id"`
	CategoryName string                        `json:"category_name"`
	Positions    map[string]*models.RankedGame `json:"positions"`
	UpdatedAt    time.Time                     `json:"updated_at"`
}

func newRankingResponse(r models.Ranking) RankingResponse {
	positions := r.Positions
	if positions == nil {
		positions = map[string]*models.RankedGame{}
	}
	return RankingResponse{
		ID:           r.ID.Hex(),
		UserID:       r.UserID,
		UserName:     r.UserName,
		CategoryID:   r.CategoryID.Hex(),
		CategoryName: r.CategoryName,
		Positions:    positions,
		UpdatedAt:    r.UpdatedAt,
	}
}

type RankingEditorResponse struct {
	Category   CategoryRef           `json:"category"`
	Positions  []int                 `json:"positions"`
	TotalGames int                   `json:"total_games"`
	Ranking    *RankingResponse      `json:"ranking"`
	Games      PaginatedGameResponse `json:"games"`
}

// RankingInput maps position numbers ("1".."10") to a game id, or null for an empty slot.
type RankingInput struct {
	CategoryID string          `json:"category_id" binding:"required" example:"665f1c2e8b3e4a0001a1b2c3"`
	Positions  map[string]*int `json:"positions"`
}

type SaveRankingResponse struct {
	Status  string          `json:"status" example:"ok"`
	Ranking RankingResponse `json:"ranking"`
}

type RankedEntry struct {
	Position int    `json:"position"`
	GameID   int    `json:"game_id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
}

type MyRankingResponse struct {
	ID           string        `json:"id"`
	CategoryID   string        `json:"category_id"`
	CategoryName string        `json:"category_name"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Games        []RankedEntry `json:"games"`
}

// filledEntries lists the occupied positions in order. Rankings from before a
// category shrank may hold keys past its current size, so the full range is scanned.
func filledEntries(r models.Ranking) []RankedEntry {
	var entries []RankedEntry
	for pos := 1; pos <= models.MaxRankingPositions; pos++ {
		if g := r.At(pos); g != nil {
			entries = append(entries, RankedEntry{Position: pos, GameID: g.ID, Name: g.Name, Image: g.Image})
		}
	}
	return entries
}

// endregion

// rankingSlots is the number of positions offered for a category with the given
// number of games still in the catalog.
func rankingSlots(available int) int {
	return min(available, models.MaxRankingPositions)
}

// memberGames returns the category's games that still exist in the catalog, keyed by BGG id.
// Category lists may reference games deleted since they were added.
func (h *Handler) memberGames(ctx context.Context, category *models.Category) (map[int]models.Game, error) {
	games, err := h.Games.FindByBGGIDs(ctx, category.Games)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]models.Game, len(games))
	for _, g := range games {
		byID[g.BGGID] = g
	}
	return byID, nil
}

// GetRankingEditor godoc
// @Summary      Ranking editor data
// @Description  Returns the positions available in a category, the caller's current ranking and a page (12 per page) of the category's games.
// @Tags         rankings
// @Produce      json
// @Security     BearerAuth
// @Param        categoryID path  string true  "Category ID"
// @Param        name       query string false "Case-insensitive substring of the game name"
// @Param        page       query int    false "Page number" default(1)
// @Success      200 {object} RankingEditorResponse
// @Failure      404 {object} ErrorResponse "Category not found"
// @Router       /rankings/editor/{categoryID} [get]
func (h *Handler) GetRankingEditor(c *gin.Context) {
	id, ok := parseObjectID(c.Param("categoryID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	ctx := c.Request.Context()
	user := currentUser(c)

	category, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to retrieve category")
		return
	}

	members, err := h.memberGames(ctx, category)
	if err != nil {
		h.internalError(c, "Failed to retrieve games", err)
		return
	}

	slots := rankingSlots(len(members))
	positions := make([]int, slots)
	for i := range positions {
		positions[i] = i + 1
	}

	var current *RankingResponse
	existing, err := h.Rankings.FindByUserAndCategory(ctx, user.ID, id)
	switch {
	case err == nil:
		resp := newRankingResponse(*existing)
		current = &resp
	case !errors.Is(err, repository.ErrNotFound):
		h.internalError(c, "Failed to retrieve ranking", err)
		return
	}

	page := fixedPage(c)
	filter := repository.GameFilter{Name: c.Query("name"), IDs: category.Games, ScopeToIDs: true}
	games, total, err := h.Games.List(ctx, filter, page, editorPageSize)
	if err != nil {
		h.internalError(c, "Failed to retrieve games", err)
		return
	}
	paged := NewPaginatedResponse(newGameResponses(games), total, page, editorPageSize)

	c.JSON(http.StatusOK, RankingEditorResponse{
		Category:   CategoryRef{ID: category.ID.Hex(), Name: category.Name},
		Positions:  positions,
		TotalGames: len(members),
		Ranking:    current,
		Games:      PaginatedGameResponse{Data: paged.Data, Meta: paged.Meta},
	})
}

// SaveRanking godoc
// @Summary      Save a ranking
// @Description  Creates or replaces the caller's ranking for a category.
// @Tags         rankings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RankingInput true "Ranking"
// @Success      200 {object} SaveRankingResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Category not found"
// @Router       /rankings [put]
func (h *Handler) SaveRanking(c *gin.Context) {
	var input RankingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	categoryID, ok := parseObjectID(input.CategoryID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	ctx := c.Request.Context()
	user := currentUser(c)

	category, err := h.Categories.FindByID(ctx, categoryID)
	if err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to retrieve category")
		return
	}

	members, err := h.memberGames(ctx, category)
	if err != nil {
		h.internalError(c, "Failed to retrieve games", err)
		return
	}

	placed, err := validatePositions(input.Positions, category, members)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	positions := make(map[string]*models.RankedGame, len(placed))
	for pos, gameID := range placed {
		key := strconv.Itoa(pos)
		if gameID == nil {
			positions[key] = nil
			continue
		}
		g := members[*gameID]
		positions[key] = &models.RankedGame{ID: g.BGGID, Name: g.Name, Image: g.ImagePath}
	}

	ranking := models.Ranking{
		UserID:       user.ID,
		UserName:     user.Name,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Positions:    positions,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := h.Rankings.Upsert(ctx, &ranking); err != nil {
		h.internalError(c, "Failed to save ranking", err)
		return
	}

	h.Metrics.RankingSaved()
	h.Hub.Publish(hub.EventRankingSaved, gin.H{
		"ranking_id": ranking.ID.Hex(),
		"user":       user.Name,
		"category":   category.Name,
		"filled":     ranking.Filled(),
	})
	h.Log.Info("Ranking saved",
		zap.Uint("user_id", user.ID),
		zap.String("category_id", category.ID.Hex()),
		zap.Int("filled", ranking.Filled()))
	c.JSON(http.StatusOK, SaveRankingResponse{Status: "ok", Ranking: newRankingResponse(ranking)})
}

// validatePositions checks every submitted slot against the category and returns
// the placements keyed by position number.
func validatePositions(submitted map[string]*int, category *models.Category, members map[int]models.Game) (map[int]*int, error) {
	slots := rankingSlots(len(members))
	placed := make(map[int]*int, len(submitted))
	seen := make(map[int]bool, len(submitted))

	for key, gameID := range submitted {
		pos, err := strconv.Atoi(key)
		if err != nil || pos < 1 || pos > slots {
			return nil, fmt.Errorf("position %q is out of range 1..%d", key, slots)
		}
		if _, dup := placed[pos]; dup {
			return nil, fmt.Errorf("position %d is given more than once", pos)
		}
		if gameID != nil {
			if !category.Contains(*gameID) {
				return nil, fmt.Errorf("game %d does not belong to category %q", *gameID, category.Name)
			}
			if _, ok := members[*gameID]; !ok {
				return nil, fmt.Errorf("game %d is no longer in the catalog", *gameID)
			}
			if seen[*gameID] {
				return nil, fmt.Errorf("game %d appears more than once", *gameID)
			}
			seen[*gameID] = true
		}
		placed[pos] = gameID
	}
	return placed, nil
}

// GetMyRankings godoc
// @Summary      List my rankings
// @Description  Returns the caller's rankings with their filled positions in order. Empty rankings are omitted.
// @Tags         rankings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} MyRankingResponse
// @Router       /rankings/mine [get]
func (h *Handler) GetMyRankings(c *gin.Context) {
	rankings, err := h.Rankings.ListByUser(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.internalError(c, "Failed to retrieve rankings", err)
		return
	}
	c.JSON(http.StatusOK, newMyRankingResponses(rankings))
}

func newMyRankingResponses(rankings []models.Ranking) []MyRankingResponse {
	out := make([]MyRankingResponse, 0, len(rankings))
	for _, r := range rankings {
		entries := filledEntries(r)
		if len(entries) == 0 {
			continue
		}
		out = append(out, MyRankingResponse{
			ID:           r.ID.Hex(),
			CategoryID:   r.CategoryID.Hex(),
			CategoryName: r.CategoryName,
			UpdatedAt:    r.UpdatedAt,
			Games:        entries,
		})
	}
	return out
}

// DeleteRanking godoc
// @Summary      Delete one of my rankings
// @Tags         rankings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ranking ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse "Ranking not found"
// @Router       /rankings/{id} [delete]
func (h *Handler) DeleteRanking(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ranking not found"})
		return
	}
	ctx := c.Request.Context()
	user := currentUser(c)

	ranking, err := h.Rankings.FindByID(ctx, id)
	if err != nil {
		h.notFoundOr(c, err, "Ranking not found", "Failed to retrieve ranking")
		return
	}
	// Someone else's ranking is reported as missing.
	if ranking.UserID != user.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ranking not found"})
		return
	}

	if err := h.Rankings.Delete(ctx, id); err != nil {
		h.notFoundOr(c, err, "Ranking not found", "Failed to delete ranking")
		return
	}

	h.Metrics.RankingDeleted()
	h.Hub.Publish(hub.EventRankingDeleted, gin.H{"ranking_id": id.Hex(), "user": user.Name})
	c.JSON(http.StatusOK, MessageResponse{Message: "Ranking deleted"})
}
