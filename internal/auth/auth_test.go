package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamesrank/backend/internal/config"
	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository/repotest"
	"gamesrank/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) (*repotest.Store, *gin.Engine) {
	t.Helper()
	previous := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "secret", JWTTTLHours: 1}
	t.Cleanup(func() { config.AppConfig = previous })

	store := repotest.NewStore()
	r := gin.New()
	r.GET("/me", AuthMiddleware(store.Users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetUint(UserIDKey), "email": CurrentUser(c).Email})
	})
	r.GET("/admin", AuthMiddleware(store.Users), AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return store, r
}

func createUser(t *testing.T, store *repotest.Store, email, role string, active bool) (*models.User, string) {
	t.Helper()
	user := &models.User{Email: email, Name: email, Role: role, IsActive: true}
	require.NoError(t, store.Users.Create(context.Background(), user))
	if !active {
		require.NoError(t, store.Users.SetActive(context.Background(), user.ID, false))
	}
	token, err := jwt.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	store, r := setup(t)
	user, token := createUser(t, store, "ann@example.com", models.RoleUser, true)
	_, disabledToken := createUser(t, store, "bob@example.com", models.RoleUser, false)
	orphanToken, err := jwt.GenerateToken(999)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := get(r, "/me", token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"email":"ann@example.com"}`, user.ID), w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	})

	t.Run("bad token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "garbage").Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "/me", orphanToken).Code)
	})

	t.Run("inactive user", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, get(r, "/me", disabledToken).Code)
	})

	t.Run("store failure", func(t *testing.T) {
		store.Users.Err = fmt.Errorf("boom")
		defer func() { store.Users.Err = nil }()
		assert.Equal(t, http.StatusInternalServerError, get(r, "/me", token).Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	store, r := setup(t)
	_, userToken := createUser(t, store, "user@example.com", models.RoleUser, true)
	_, adminToken := createUser(t, store, "admin@example.com", models.RoleAdmin, true)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", userToken).Code)
	assert.Equal(t, http.StatusNoContent, get(r, "/admin", adminToken).Code)
}

func TestRateLimit(t *testing.T) {
	limiter := PerMinute(2)
	r := gin.New()
	r.POST("/login", RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"), "other clients keep their own bucket")
}

func TestIPRateLimiter_PrunesIdleEntries(t *testing.T) {
	limiter := PerMinute(5)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	for i := 0; i <= cleanupThreshold; i++ {
		limiter.GetLimiter(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	require.Equal(t, cleanupThreshold+1, limiter.Size())

	now = now.Add(maxIdleAge + time.Minute)
	limiter.GetLimiter("192.168.0.1")
	assert.Equal(t, 1, limiter.Size())
}
