package handler

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func seedActivity(t *testing.T, env *testEnv) {
	t.Helper()
	env.seedCatalog()
	euro := env.seedCategory("Euro", 13, 224517, 230802)
	bob := env.createUser("bob@example.com", "Bob", models.RoleUser)

	for _, req := range []struct {
		user *models.User
		body gin.H
	}{
		{env.user, gin.H{"category_id": euro.ID.Hex(), "positions": gin.H{"1": 224517, "2": 13}}},
		{bob, gin.H{"category_id": euro.ID.Hex(), "positions": gin.H{"1": 224517, "2": 230802, "3": 13}}},
	} {
		require.Equal(t, http.StatusOK, env.do(http.MethodPut, "/rankings", req.body, req.user).Code)
	}
	for _, req := range []struct {
		user *models.User
		body gin.H
	}{
		{env.user, gin.H{"game_id": 224517, "stars": 5, "comment": "Best"}},
		{bob, gin.H{"game_id": 224517, "stars": 4}},
		{bob, gin.H{"game_id": 178900, "stars": 3, "comment": "Fun"}},
	} {
		require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/ratings", req.body, req.user).Code)
	}
}

func TestGetStats(t *testing.T) {
	env := newTestEnv(t, nil)
	seedActivity(t, env)

	w := env.do(http.MethodGet, "/stats", nil, env.user)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	report := decode[stats.Report](t, w)
	assert.Equal(t, 2, report.TotalRankings)
	assert.Equal(t, 3, report.TotalVotes)

	require.Len(t, report.Ranking, 3)
	assert.Equal(t, "Brass: Birmingham", report.Ranking[0].Name)
	assert.Equal(t, 2, report.Ranking[0].Appearances)
	assert.InDelta(t, 1.0, report.Ranking[0].AveragePosition, 0.001)
	assert.Equal(t, "Azul", report.Ranking[1].Name)
	assert.Equal(t, "Catan", report.Ranking[2].Name)
	assert.InDelta(t, 2.5, report.Ranking[2].AveragePosition, 0.001)

	require.Len(t, report.Votes, 2)
	assert.Equal(t, "Brass: Birmingham", report.Votes[0].Name)
	assert.InDelta(t, 4.5, report.Votes[0].AverageStars, 0.001)
	assert.Equal(t, []string{"Best"}, report.Votes[0].Comments)
	assert.Equal(t, "Codenames", report.Votes[1].Name)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Euro", report.Categories[0].Name)
	assert.InDelta(t, 2.5, report.Categories[0].AverageFilled, 0.001)
	require.NotNil(t, report.Categories[0].AverageStars)
	assert.InDelta(t, 4.5, *report.Categories[0].AverageStars, 0.001)
}

func TestGetStats_Empty(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(http.MethodGet, "/stats", nil, env.user)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[stats.Report](t, w)
	assert.Zero(t, report.TotalRankings)
	assert.Empty(t, report.Ranking)
}

func TestGetStatsChart(t *testing.T) {
	env := newTestEnv(t, nil)
	seedActivity(t, env)

	w := env.do(http.MethodGet, "/stats/chart.png", nil, env.user)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestExportStats(t *testing.T) {
	env := newTestEnv(t, nil)
	seedActivity(t, env)

	w := env.do(http.MethodGet, "/admin/stats/export", nil, env.admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="gamesrank-stats-`))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{stats.RankingSheet, stats.VotesSheet, stats.CategoriesSheet}, f.GetSheetList())
}

func TestGetStats_StoreFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	env.store.Rankings.Err = assert.AnError

	w := env.do(http.MethodGet, "/stats", nil, env.user)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to compute statistics"}`, w.Body.String())
}
