package handler

import (
	"net/http"
	"strings"
	"time"

	"gamesrank/backend/internal/hub"
	"gamesrank/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// candidatesPageSize is the page size of the candidate search on the category detail.
const candidatesPageSize = 8

// region --- DTOs ---

type CategoryInput struct {
	Name string `json:"name" binding:"required,max=100" example:"Heavy euros"`
}

type CategoryGameInput struct {
	GameID int `json:"game_id" binding:"required,min=1" example:"224517"`
}

type CategoryResponse struct {
	ID        string    `json:"id" example:"665f1c2e8b3e4a0001a1b2c3"`
	Name      string    `json:"name" example:"Heavy euros"`
	Games     []int     `json:"games"`
	GameCount int       `json:"game_count"`
	CreatedAt time.Time `json:"created_at"`
}

func newCategoryResponse(category models.Category) CategoryResponse {
	games := category.Games
	if games == nil {
		games = []int{}
	}
	return CategoryResponse{
		ID:        category.ID.Hex(),
		Name:      category.Name,
		Games:     games,
		GameCount: len(games),
		CreatedAt: category.CreatedAt,
	}
}

func newCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, newCategoryResponse(category))
	}
	return out
}

// CategoryDetailResponse is the admin view of one category: its members plus a
// page of games that could be added.
type CategoryDetailResponse struct {
	Category   CategoryResponse      `json:"category"`
	Members    []GameResponse        `json:"members"`
	Candidates PaginatedGameResponse `json:"candidates"`
}

// endregion

// region --- Public Handlers ---

// GetCategories godoc
// @Summary      List rankable categories
// @Description  Returns the categories that contain at least one game.
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} CategoryResponse
// @Router       /categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.Categories.ListNonEmpty(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to retrieve categories", err)
		return
	}
	c.JSON(http.StatusOK, newCategoryResponses(categories))
}

// endregion

// region --- Admin Handlers ---

// AdminGetCategories godoc
// @Summary      List all categories
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} CategoryResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/categories [get]
func (h *Handler) AdminGetCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to retrieve categories", err)
		return
	}
	c.JSON(http.StatusOK, newCategoryResponses(categories))
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Creates an empty category.
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CategoryInput true "Category Info"
// @Success      201 {object} CategoryResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	name, ok := bindCategoryName(c)
	if !ok {
		return
	}

	category := models.Category{Name: name, Games: []int{}, CreatedAt: time.Now().UTC()}
	if err := h.Categories.Create(c.Request.Context(), &category); err != nil {
		h.internalError(c, "Failed to create category", err)
		return
	}

	h.Log.Info("Category created", zap.String("category_id", category.ID.Hex()), zap.String("name", name))
	h.Hub.Publish(hub.EventCatalogChanged, gin.H{"action": "category_created", "category_id": category.ID.Hex()})
	c.JSON(http.StatusCreated, newCategoryResponse(category))
}

// RenameCategory godoc
// @Summary      Rename a category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path string        true "Category ID"
// @Param        input body CategoryInput true "New name"
// @Success      200 {object} CategoryResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Category not found"
// @Router       /admin/categories/{id} [put]
func (h *Handler) RenameCategory(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	name, ok := bindCategoryName(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Categories.Rename(ctx, id, name); err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to rename category")
		return
	}
	category, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to retrieve category")
		return
	}
	h.Hub.Publish(hub.EventCatalogChanged, gin.H{"action": "category_renamed", "category_id": id.Hex()})
	c.JSON(http.StatusOK, newCategoryResponse(*category))
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Deletes a category. Rankings that reference it are kept.
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Invalid category ID"
// @Failure      404 {object} ErrorResponse "Category not found"
// @Router       /admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := h.Categories.Delete(c.Request.Context(), id); err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to delete category")
		return
	}

	h.Log.Info("Category deleted", zap.String("category_id", id.Hex()))
	h.Hub.Publish(hub.EventCatalogChanged, gin.H{"action": "category_deleted", "category_id": id.Hex()})
	c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted"})
}

// GetCategoryDetail godoc
// @Summary      Category detail with candidate search
// @Description  Returns the member games and a page (8 per page) of non-member games matching the filters.
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id          path  string true  "Category ID"
// @Param        name        query string false "Case-insensitive substring of the name"
// @Param        year        query int    false "Exact publication year"
// @Param        min_players query int    false "Minimum player count at least"
// @Param        max_players query int    false "Maximum player count at most"
// @Param        page        query int    false "Candidate page" default(1)
// @Success      200 {object} CategoryDetailResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Category not found"
// @Router       /admin/categories/{id} [get]
func (h *Handler) GetCategoryDetail(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	filter, err := gameFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := fixedPage(c)
	ctx := c.Request.Context()

	category, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to retrieve category")
		return
	}

	members, err := h.Games.FindByBGGIDs(ctx, category.Games)
	if err != nil {
		h.internalError(c, "Failed to retrieve category games", err)
		return
	}

	filter.ExcludeIDs = category.Games
	candidates, total, err := h.Games.List(ctx, filter, page, candidatesPageSize)
	if err != nil {
		h.internalError(c, "Failed to search games", err)
		return
	}

	paged := NewPaginatedResponse(newGameResponses(candidates), total, page, candidatesPageSize)
	c.JSON(http.StatusOK, CategoryDetailResponse{
		Category:   newCategoryResponse(*category),
		Members:    newGameResponses(members),
		Candidates: PaginatedGameResponse{Data: paged.Data, Meta: paged.Meta},
	})
}

// AddCategoryGame godoc
// @Summary      Add a game to a category
// @Description  Adds a game to the category's list. Adding a member again is a no-op.
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path string            true "Category ID"
// @Param        input body CategoryGameInput true "Game"
// @Success      200 {object} CategoryResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Category or game not found"
// @Router       /admin/categories/{id}/games [post]
func (h *Handler) AddCategoryGame(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	var input CategoryGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	if _, err := h.Games.FindByBGGID(ctx, input.GameID); err != nil {
		h.notFoundOr(c, err, "Game not found", "Failed to retrieve game")
		return
	}
	if err := h.Categories.AddGame(ctx, id, input.GameID); err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to add game")
		return
	}
	h.respondCategory(c, id)
}

// RemoveCategoryGame godoc
// @Summary      Remove a game from a category
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id     path string true "Category ID"
// @Param        gameID path int    true "BGG id"
// @Success      200 {object} CategoryResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Category not found"
// @Router       /admin/categories/{id}/games/{gameID} [delete]
func (h *Handler) RemoveCategoryGame(c *gin.Context) {
	id, ok := parseObjectID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	gameID, ok := parseGameID(c.Param("gameID"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if err := h.Categories.RemoveGame(c.Request.Context(), id, gameID); err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to remove game")
		return
	}
	h.respondCategory(c, id)
}

// endregion

func bindCategoryName(c *gin.Context) (string, bool) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name cannot be blank"})
		return "", false
	}
	return name, true
}

func (h *Handler) respondCategory(c *gin.Context, id primitive.ObjectID) {
	category, err := h.Categories.FindByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOr(c, err, "Category not found", "Failed to retrieve category")
		return
	}
	h.Hub.Publish(hub.EventCatalogChanged, gin.H{"action": "category_updated", "category_id": category.ID.Hex()})
	c.JSON(http.StatusOK, newCategoryResponse(*category))
}
