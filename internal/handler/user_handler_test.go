package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"gamesrank/backend/internal/models"
	"gamesrank/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("creates a regular user", func(t *testing.T) {
		w := env.do(http.MethodPost, "/auth/register", gin.H{"email": "bob@example.com", "name": "Bob", "password": "password123"}, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := decode[TokenResponse](t, w)
		userID, err := jwt.ParseToken(resp.Token)
		require.NoError(t, err)

		user, err := env.store.Users.FindByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.False(t, user.IsStaff)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := env.do(http.MethodPost, "/auth/register", gin.H{"email": "ann@example.com", "name": "Ann 2", "password": "password123"}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := env.do(http.MethodPost, "/auth/register", gin.H{"email": "eve@example.com", "name": "Eve", "password": "short"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		w := env.do(http.MethodPost, "/auth/register", gin.H{"email": "not-an-email", "name": "Eve", "password": "password123"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("password longer than 72 bytes", func(t *testing.T) {
		w := env.do(http.MethodPost, "/auth/register", gin.H{"email": "long@example.com", "name": "Long", "password": strings.Repeat("a", 80)}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("multi-byte password over 72 bytes", func(t *testing.T) {
		// 40 characters pass the length binding but take 80 bytes.
		w := env.do(http.MethodPost, "/auth/register", gin.H{"email": "wide@example.com", "name": "Wide", "password": strings.Repeat("é", 40)}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "at most 72 bytes")

		_, err := env.store.Users.FindByEmail(context.Background(), "wide@example.com")
		assert.Error(t, err)
	})
}

func TestLoginUser(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{name: "valid", email: "ann@example.com", password: "password123", want: http.StatusOK},
		{name: "email is case-insensitive", email: "ANN@example.com", password: "password123", want: http.StatusOK},
		{name: "wrong password", email: "ann@example.com", password: "nope-nope", want: http.StatusUnauthorized},
		{name: "unknown email", email: "ghost@example.com", password: "password123", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/auth/login", gin.H{"email": tt.email, "password": tt.password}, nil)
			require.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.want == http.StatusOK {
				userID, err := jwt.ParseToken(decode[TokenResponse](t, w).Token)
				require.NoError(t, err)
				assert.Equal(t, env.user.ID, userID)
			}
		})
	}

	t.Run("inactive account", func(t *testing.T) {
		require.NoError(t, env.store.Users.SetActive(context.Background(), env.user.ID, false))
		w := env.do(http.MethodPost, "/auth/login", gin.H{"email": "ann@example.com", "password": "password123"}, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		env.store.Users.Err = errors.New("db down")
		defer func() { env.store.Users.Err = nil }()
		w := env.do(http.MethodPost, "/auth/login", gin.H{"email": "ann@example.com", "password": "password123"}, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to log in"}`, w.Body.String())
	})
}

func TestGetMe(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	category := env.seedCategory("Euro", 13, 224517)

	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/ratings", gin.H{"game_id": 13, "stars": 4}, env.user).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodPut, "/rankings", gin.H{
		"category_id": category.ID.Hex(),
		"positions":   gin.H{"1": 13},
	}, env.user).Code)

	w := env.do(http.MethodGet, "/users/me", nil, env.user)
	require.Equal(t, http.StatusOK, w.Code)

	me := decode[PrivateUserResponse](t, w)
	assert.Equal(t, PrivateUserResponse{
		ID:            env.user.ID,
		Email:         "ann@example.com",
		Name:          "Ann",
		Role:          models.RoleUser,
		RankingsCount: 1,
		RatingsCount:  1,
	}, me)
}
