package handler

import (
	"context"
	"net/http"
	"testing"

	"gamesrank/backend/internal/hub"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSaveRating(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	feed := env.hub.Subscribe(4)
	defer env.hub.Unsubscribe(feed)

	w := env.do(http.MethodPost, "/ratings", gin.H{"game_id": 13, "stars": 4, "comment": "Solid"}, env.user)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"success","created":true,"message":"Rating saved"}`, w.Body.String())

	w = env.do(http.MethodPost, "/ratings", gin.H{"game_id": 13, "stars": 2, "comment": ""}, env.user)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","created":false,"message":"Rating updated"}`, w.Body.String())

	ratings, err := env.store.Ratings.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ratings, 1, "one rating per user and game")
	assert.Equal(t, 2, ratings[0].Stars)
	assert.Empty(t, ratings[0].Comment)

	assert.Len(t, feed, 2)
	assert.Contains(t, string(<-feed), hub.EventRatingSaved)

	series, err := testutil.GatherAndCount(env.h.Metrics.Registry(), "gamesrank_ratings_saved_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series, "one created and one updated series")
}

func TestSaveRating_Validation(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()

	tests := []struct {
		name string
		body gin.H
		want int
	}{
		{name: "zero stars", body: gin.H{"game_id": 13, "stars": 0}, want: http.StatusBadRequest},
		{name: "six stars", body: gin.H{"game_id": 13, "stars": 6}, want: http.StatusBadRequest},
		{name: "missing game", body: gin.H{"stars": 3}, want: http.StatusBadRequest},
		{name: "unknown game", body: gin.H{"game_id": 999, "stars": 3}, want: http.StatusNotFound},
		{name: "stars as text", body: gin.H{"game_id": 13, "stars": "five"}, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, env.do(http.MethodPost, "/ratings", tt.body, env.user).Code)
		})
	}
}

func TestGetMyRating(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()

	w := env.do(http.MethodGet, "/ratings/13", nil, env.user)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"exists":false}`, w.Body.String())

	env.do(http.MethodPost, "/ratings", gin.H{"game_id": 13, "stars": 5, "comment": "Timeless"}, env.user)

	w = env.do(http.MethodGet, "/ratings/13", nil, env.user)
	assert.JSONEq(t, `{"exists":true,"stars":5,"comment":"Timeless"}`, w.Body.String())

	w = env.do(http.MethodGet, "/ratings/13", nil, env.admin)
	assert.JSONEq(t, `{"exists":false}`, w.Body.String(), "ratings are per user")
}

func TestDeleteRating(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	env.do(http.MethodPost, "/ratings", gin.H{"game_id": 13, "stars": 1, "comment": "spam"}, env.user)

	rating, err := env.store.Ratings.Find(context.Background(), env.user.ID, 13)
	require.NoError(t, err)
	path := "/admin/ratings/" + rating.ID.Hex()

	assert.Equal(t, http.StatusOK, env.do(http.MethodDelete, path, nil, env.admin).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, path, nil, env.admin).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/admin/ratings/"+primitive.NewObjectID().Hex(), nil, env.admin).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodDelete, "/admin/ratings/nope", nil, env.admin).Code)
}
