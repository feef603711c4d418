package handler

import (
	"context"
	"net/http"
	"testing"

	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetRankingEditor(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	small := env.seedCategory("Small", 13, 230802, 174430)

	ids := make([]int, 0, 15)
	for i := 1; i <= 15; i++ {
		id := 1000 + i
		env.store.Games.Seed(models.Game{BGGID: id, Name: "Filler " + string(rune('A'+i-1))})
		ids = append(ids, id)
	}
	big := env.seedCategory("Big", ids...)

	t.Run("positions follow the category size", func(t *testing.T) {
		w := env.do(http.MethodGet, "/rankings/editor/"+small.ID.Hex(), nil, env.user)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[RankingEditorResponse](t, w)
		assert.Equal(t, CategoryRef{ID: small.ID.Hex(), Name: "Small"}, resp.Category)
		assert.Equal(t, []int{1, 2, 3}, resp.Positions)
		assert.Equal(t, 3, resp.TotalGames)
		assert.Nil(t, resp.Ranking)
		assert.Equal(t, []string{"Azul", "Catan", "Gloomhaven"}, gameNames(resp.Games.Data))
	})

	t.Run("caps at ten positions and pages by twelve", func(t *testing.T) {
		resp := decode[RankingEditorResponse](t, env.do(http.MethodGet, "/rankings/editor/"+big.ID.Hex(), nil, env.user))
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, resp.Positions)
		assert.Equal(t, 15, resp.TotalGames)
		assert.Len(t, resp.Games.Data, 12)
		assert.Equal(t, 2, resp.Games.Meta.TotalPages)

		second := decode[RankingEditorResponse](t, env.do(http.MethodGet, "/rankings/editor/"+big.ID.Hex()+"?page=2", nil, env.user))
		assert.Len(t, second.Games.Data, 3)
	})

	t.Run("name filter stays inside the category", func(t *testing.T) {
		resp := decode[RankingEditorResponse](t, env.do(http.MethodGet, "/rankings/editor/"+small.ID.Hex()+"?name=a", nil, env.user))
		assert.Equal(t, []string{"Azul", "Catan", "Gloomhaven"}, gameNames(resp.Games.Data))

		resp = decode[RankingEditorResponse](t, env.do(http.MethodGet, "/rankings/editor/"+small.ID.Hex()+"?name=brass", nil, env.user))
		assert.Empty(t, resp.Games.Data)
	})

	t.Run("includes the existing ranking", func(t *testing.T) {
		require.Equal(t, http.StatusOK, env.do(http.MethodPut, "/rankings", gin.H{
			"category_id": small.ID.Hex(),
			"positions":   gin.H{"2": 13},
		}, env.user).Code)

		resp := decode[RankingEditorResponse](t, env.do(http.MethodGet, "/rankings/editor/"+small.ID.Hex(), nil, env.user))
		require.NotNil(t, resp.Ranking)
		assert.Equal(t, "Catan", resp.Ranking.Positions["2"].Name)
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/rankings/editor/"+primitive.NewObjectID().Hex(), nil, env.user).Code)
		assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/rankings/editor/garbage", nil, env.user).Code)
	})
}

func TestSaveRanking(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	category := env.seedCategory("Euro", 13, 224517, 230802)
	ctx := context.Background()

	t.Run("stores snapshots from the catalog", func(t *testing.T) {
		w := env.do(http.MethodPut, "/rankings", gin.H{
			"category_id": category.ID.Hex(),
			"positions":   gin.H{"1": 224517, "2": nil, "3": 13},
		}, env.user)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[SaveRankingResponse](t, w)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "Euro", resp.Ranking.CategoryName)
		assert.Equal(t, "Ann", resp.Ranking.UserName)
		assert.Equal(t, &models.RankedGame{ID: 224517, Name: "Brass: Birmingham", Image: "brass.png"}, resp.Ranking.Positions["1"])
		assert.Nil(t, resp.Ranking.Positions["2"])
		assert.Equal(t, 13, resp.Ranking.Positions["3"].ID)
	})

	t.Run("upserts per user and category", func(t *testing.T) {
		w := env.do(http.MethodPut, "/rankings", gin.H{
			"category_id": category.ID.Hex(),
			"positions":   gin.H{"1": 230802},
		}, env.user)
		require.Equal(t, http.StatusOK, w.Code)

		mine, err := env.store.Rankings.ListByUser(ctx, env.user.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "Azul", mine[0].At(1).Name)
		assert.Nil(t, mine[0].At(3))
	})

	tests := []struct {
		name      string
		body      gin.H
		want      int
		wantError string
	}{
		{name: "missing category", body: gin.H{"positions": gin.H{"1": 13}}, want: http.StatusBadRequest},
		{name: "unknown category", body: gin.H{"category_id": primitive.NewObjectID().Hex(), "positions": gin.H{"1": 13}}, want: http.StatusNotFound},
		{name: "malformed category", body: gin.H{"category_id": "xyz", "positions": gin.H{"1": 13}}, want: http.StatusNotFound},
		{name: "position zero", body: gin.H{"category_id": category.ID.Hex(), "positions": gin.H{"0": 13}}, want: http.StatusBadRequest},
		{name: "position past category size", body: gin.H{"category_id": category.ID.Hex(), "positions": gin.H{"4": 13}}, want: http.StatusBadRequest},
		{name: "non numeric position", body: gin.H{"category_id": category.ID.Hex(), "positions": gin.H{"first": 13}}, want: http.StatusBadRequest},
		{name: "game outside category", body: gin.H{"category_id": category.ID.Hex(), "positions": gin.H{"1": 178900}}, want: http.StatusBadRequest},
		{
			name:      "duplicated game",
			body:      gin.H{"category_id": category.ID.Hex(), "positions": gin.H{"1": 13, "2": 13}},
			want:      http.StatusBadRequest,
			wantError: "game 13 appears more than once",
		},
		{name: "same position twice", body: gin.H{"category_id": category.ID.Hex(), "positions": gin.H{"1": 13, "01": 224517}}, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPut, "/rankings", tt.body, env.user)
			require.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, w.Body.String())
			}
		})
	}
}

func TestRanking_AfterCatalogCleared(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	category := env.seedCategory("Euro", 13, 224517, 230802)

	w := env.do(http.MethodDelete, "/admin/games", nil, env.admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("editor offers no positions", func(t *testing.T) {
		w := env.do(http.MethodGet, "/rankings/editor/"+category.ID.Hex(), nil, env.user)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[RankingEditorResponse](t, w)
		assert.Empty(t, resp.Positions)
		assert.Equal(t, 0, resp.TotalGames)
		assert.Empty(t, resp.Games.Data)
	})

	t.Run("saving a deleted game is rejected", func(t *testing.T) {
		w := env.do(http.MethodPut, "/rankings", gin.H{
			"category_id": category.ID.Hex(),
			"positions":   gin.H{"1": 13},
		}, env.user)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		_, err := env.store.Rankings.FindByUserAndCategory(context.Background(), env.user.ID, category.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRanking_PartiallyDeletedCategory(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	category := env.seedCategory("Euro", 13, 224517, 230802)

	w := env.do(http.MethodDelete, "/admin/games/230802", nil, env.admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	// Put the deleted id back into the list to leave a stale member.
	require.NoError(t, env.store.Categories.AddGame(context.Background(), category.ID, 230802))

	resp := decode[RankingEditorResponse](t, env.do(http.MethodGet, "/rankings/editor/"+category.ID.Hex(), nil, env.user))
	assert.Equal(t, []int{1, 2}, resp.Positions)
	assert.Equal(t, 2, resp.TotalGames)

	w = env.do(http.MethodPut, "/rankings", gin.H{
		"category_id": category.ID.Hex(),
		"positions":   gin.H{"1": 230802},
	}, env.user)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.JSONEq(t, `{"error":"game 230802 is no longer in the catalog"}`, w.Body.String())

	w = env.do(http.MethodPut, "/rankings", gin.H{
		"category_id": category.ID.Hex(),
		"positions":   gin.H{"1": 13, "2": 224517},
	}, env.user)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestGetMyRankings(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	euro := env.seedCategory("Euro", 13, 224517)
	party := env.seedCategory("Party", 178900)
	other := env.createUser("bob@example.com", "Bob", models.RoleUser)

	env.do(http.MethodPut, "/rankings", gin.H{"category_id": euro.ID.Hex(), "positions": gin.H{"2": 13, "1": 224517}}, env.user)
	env.do(http.MethodPut, "/rankings", gin.H{"category_id": party.ID.Hex(), "positions": gin.H{"1": nil}}, env.user)
	env.do(http.MethodPut, "/rankings", gin.H{"category_id": party.ID.Hex(), "positions": gin.H{"1": 178900}}, other)

	w := env.do(http.MethodGet, "/rankings/mine", nil, env.user)
	require.Equal(t, http.StatusOK, w.Code)

	mine := decode[[]MyRankingResponse](t, w)
	require.Len(t, mine, 1, "empty rankings are omitted")
	assert.Equal(t, "Euro", mine[0].CategoryName)
	assert.Equal(t, []RankedEntry{
		{Position: 1, GameID: 224517, Name: "Brass: Birmingham", Image: "brass.png"},
		{Position: 2, GameID: 13, Name: "Catan", Image: "catan.png"},
	}, mine[0].Games)
}

func TestDeleteRanking(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seedCatalog()
	category := env.seedCategory("Euro", 13)
	other := env.createUser("bob@example.com", "Bob", models.RoleUser)

	saved := decode[SaveRankingResponse](t, env.do(http.MethodPut, "/rankings", gin.H{
		"category_id": category.ID.Hex(),
		"positions":   gin.H{"1": 13},
	}, env.user))
	path := "/rankings/" + saved.Ranking.ID

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, path, nil, other).Code, "only the owner may delete")
	assert.Equal(t, http.StatusOK, env.do(http.MethodDelete, path, nil, env.user).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, path, nil, env.user).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/rankings/bogus", nil, env.user).Code)
}
