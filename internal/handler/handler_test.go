package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"gamesrank/backend/internal/auth"
	"gamesrank/backend/internal/catalog"
	"gamesrank/backend/internal/config"
	"gamesrank/backend/internal/hub"
	"gamesrank/backend/internal/metrics"
	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository/repotest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserHeader = "X-Test-User"

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	t      *testing.T
	store  *repotest.Store
	hub    *hub.Hub
	h      *Handler
	engine *gin.Engine
	user   *models.User
	admin  *models.User
}

// newTestEnv wires a Handler on in-memory repositories. Requests authenticate by
// sending the user id in X-Test-User instead of a token.
func newTestEnv(t *testing.T, source catalog.Source) *testEnv {
	t.Helper()

	previous := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTTTLHours: 1}
	t.Cleanup(func() { config.AppConfig = previous })

	store := repotest.NewStore()
	activity := hub.NewHub()
	h := &Handler{
		Users:      store.Users,
		Games:      store.Games,
		Categories: store.Categories,
		Rankings:   store.Rankings,
		Ratings:    store.Ratings,
		Catalog:    catalog.NewService(store.Games, source, zap.NewNop()),
		Hub:        activity,
		Metrics:    metrics.New(),
		Log:        zap.NewNop(),
	}

	env := &testEnv{t: t, store: store, hub: activity, h: h}
	env.user = env.createUser("ann@example.com", "Ann", models.RoleUser)
	env.admin = env.createUser("root@example.com", "Root", models.RoleAdmin)
	env.engine = env.routes()
	return env
}

func (e *testEnv) createUser(email, name, role string) *models.User {
	e.t.Helper()
	user, err := auth.CreateAccount(context.Background(), e.store.Users, auth.NewAccount{
		Email: email, Name: name, Password: "password123", Role: role,
	})
	require.NoError(e.t, err)
	return user
}

func (e *testEnv) asUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(testUserHeader)
		if raw == "" {
			c.Next()
			return
		}
		id, err := strconv.ParseUint(raw, 10, 0)
		require.NoError(e.t, err)
		user, err := e.store.Users.FindByID(c.Request.Context(), uint(id))
		require.NoError(e.t, err)
		c.Set(auth.UserIDKey, user.ID)
		c.Set(auth.UserKey, user)
		c.Next()
	}
}

func (e *testEnv) routes() *gin.Engine {
	h := e.h
	r := gin.New()
	r.POST("/auth/register", h.RegisterUser)
	r.POST("/auth/login", h.LoginUser)

	api := r.Group("", e.asUser())
	api.GET("/users/me", h.GetMe)
	api.GET("/games", h.GetGames)
	api.GET("/games/:id", h.GetGameByID)
	api.GET("/games/:id/comments", h.GetGameComments)
	api.GET("/categories", h.GetCategories)
	api.GET("/rankings/editor/:categoryID", h.GetRankingEditor)
	api.GET("/rankings/mine", h.GetMyRankings)
	api.PUT("/rankings", h.SaveRanking)
	api.DELETE("/rankings/:id", h.DeleteRanking)
	api.POST("/ratings", h.SaveRating)
	api.GET("/ratings/:gameID", h.GetMyRating)
	api.GET("/stats", h.GetStats)
	api.GET("/stats/chart.png", h.GetStatsChart)

	admin := api.Group("/admin")
	admin.DELETE("/games", h.DeleteAllGames)
	admin.DELETE("/games/:id", h.DeleteGame)
	admin.POST("/games/import", h.ImportGames)
	admin.POST("/games/sync", h.SyncGames)
	admin.GET("/categories", h.AdminGetCategories)
	admin.POST("/categories", h.CreateCategory)
	admin.GET("/categories/:id", h.GetCategoryDetail)
	admin.PUT("/categories/:id", h.RenameCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
	admin.POST("/categories/:id/games", h.AddCategoryGame)
	admin.DELETE("/categories/:id/games/:gameID", h.RemoveCategoryGame)
	admin.GET("/users", h.ListUsers)
	admin.POST("/users", h.CreateUser)
	admin.PATCH("/users/:id/active", h.SetUserActive)
	admin.GET("/users/:id/activity", h.GetUserActivity)
	admin.DELETE("/ratings/:id", h.DeleteRating)
	admin.GET("/stats/export", h.ExportStats)
	return r
}

// do sends a request as user (nil for anonymous). A non-nil body is encoded as JSON.
func (e *testEnv) do(method, path string, body any, user *models.User) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.send(req, user)
}

func (e *testEnv) send(req *http.Request, user *models.User) *httptest.ResponseRecorder {
	if user != nil {
		req.Header.Set(testUserHeader, strconv.FormatUint(uint64(user.ID), 10))
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// seedCatalog stores five games. Sorted by name: Azul, Brass, Catan, Codenames, Gloomhaven.
func (e *testEnv) seedCatalog() {
	e.store.Games.Seed(
		models.Game{BGGID: 13, Name: "Catan", YearPublished: 1995, MinPlayers: 3, MaxPlayers: 4, ImagePath: "catan.png"},
		models.Game{BGGID: 224517, Name: "Brass: Birmingham", YearPublished: 2018, MinPlayers: 2, MaxPlayers: 4, ImagePath: "brass.png"},
		models.Game{BGGID: 230802, Name: "Azul", YearPublished: 2017, MinPlayers: 2, MaxPlayers: 4, ImagePath: "azul.png"},
		models.Game{BGGID: 178900, Name: "Codenames", YearPublished: 2015, MinPlayers: 2, MaxPlayers: 8},
		models.Game{BGGID: 174430, Name: "Gloomhaven", YearPublished: 2017, MinPlayers: 1, MaxPlayers: 4},
	)
}

// seedCategory creates a category holding the given games.
func (e *testEnv) seedCategory(name string, games ...int) models.Category {
	e.t.Helper()
	category := models.Category{Name: name, Games: games}
	require.NoError(e.t, e.store.Categories.Create(context.Background(), &category))
	return category
}
