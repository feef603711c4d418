package stats

import (
	"bytes"
	"testing"

	"gamesrank/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ranked(id int, name string) *models.RankedGame {
	return &models.RankedGame{ID: id, Name: name, Image: name + ".png"}
}

func fixture() Input {
	strategy := models.Category{ID: primitive.NewObjectID(), Name: "Strategy", Games: []int{1, 2, 3}}
	party := primitive.NewObjectID() // deleted since the rankings were saved

	return Input{
		Categories: []models.Category{strategy},
		Rankings: []models.Ranking{
			{UserID: 1, CategoryID: strategy.ID, CategoryName: "Strategy (old name)", Positions: map[string]*models.RankedGame{
				"1": ranked(1, "Brass"), "2": ranked(2, "Catan"), "3": nil,
			}},
			{UserID: 2, CategoryID: strategy.ID, CategoryName: "Strategy", Positions: map[string]*models.RankedGame{
				"1": ranked(2, "Catan"), "2": ranked(1, "Brass"), "3": ranked(3, "Azul"),
			}},
			{UserID: 3, CategoryID: party, CategoryName: "Party", Positions: map[string]*models.RankedGame{
				"1": ranked(4, "Codenames"), "x": ranked(5, "Ignored"), "2": {ID: 0},
			}},
		},
		Ratings: []models.Rating{
			{GameID: 1, UserID: 1, Stars: 5, Comment: "great"},
			{GameID: 1, UserID: 2, Stars: 4, Comment: ""},
			{GameID: 1, UserID: 3, Stars: 4, Comment: "solid"},
			{GameID: 1, UserID: 4, Stars: 3, Comment: "meh"},
			{GameID: 2, UserID: 1, Stars: 3},
			{GameID: 99, UserID: 1, Stars: 5},
		},
		Games: map[int]models.Game{
			1: {BGGID: 1, Name: "Brass", ImagePath: "brass.jpg"},
			2: {BGGID: 2, Name: "Catan", ImagePath: "catan.jpg"},
		},
	}
}

func TestCompute_Totals(t *testing.T) {
	report := Compute(fixture())
	assert.Equal(t, 3, report.TotalRankings)
	assert.Equal(t, 6, report.TotalVotes)
}

func TestCompute_GlobalRanking(t *testing.T) {
	report := Compute(fixture())

	require.Len(t, report.Ranking, 4)
	// Codenames (1.0, 1 appearance), Brass and Catan (1.5, 2 appearances), Azul (3.0).
	assert.Equal(t, GameStanding{GameID: 4, Name: "Codenames", Image: "Codenames.png", Appearances: 1, AveragePosition: 1}, report.Ranking[0])
	assert.Equal(t, "Brass", report.Ranking[1].Name)
	assert.Equal(t, 1.5, report.Ranking[1].AveragePosition)
	assert.Equal(t, 2, report.Ranking[1].Appearances)
	assert.Equal(t, "Catan", report.Ranking[2].Name)
	assert.Equal(t, 1.5, report.Ranking[2].AveragePosition)
	assert.Equal(t, "Azul", report.Ranking[3].Name)
	assert.Equal(t, 3.0, report.Ranking[3].AveragePosition)
}

func TestCompute_MoreAppearancesWinTies(t *testing.T) {
	cat := primitive.NewObjectID()
	report := Compute(Input{Rankings: []models.Ranking{
		{CategoryID: cat, Positions: map[string]*models.RankedGame{"2": ranked(1, "Alpha")}},
		{CategoryID: cat, Positions: map[string]*models.RankedGame{"2": ranked(2, "Beta")}},
		{CategoryID: cat, Positions: map[string]*models.RankedGame{"2": ranked(2, "Beta")}},
	}})

	require.Len(t, report.Ranking, 2)
	assert.Equal(t, "Beta", report.Ranking[0].Name)
	assert.Equal(t, "Alpha", report.Ranking[1].Name)
}

func TestCompute_Votes(t *testing.T) {
	report := Compute(fixture())

	require.Len(t, report.Votes, 3)

	unknown := report.Votes[0]
	assert.Equal(t, 99, unknown.GameID)
	assert.Equal(t, "Game 99", unknown.Name)
	assert.Equal(t, 5.0, unknown.AverageStars)
	assert.Empty(t, unknown.Comments)

	brass := report.Votes[1]
	assert.Equal(t, "Brass", brass.Name)
	assert.Equal(t, "brass.jpg", brass.Image)
	assert.Equal(t, 4.0, brass.AverageStars)
	assert.Equal(t, 4, brass.TotalVotes)
	assert.Equal(t, []string{"great", "solid"}, brass.Comments)

	assert.Equal(t, "Catan", report.Votes[2].Name)
	assert.Equal(t, 3.0, report.Votes[2].AverageStars)
}

func TestCompute_AveragesAreRounded(t *testing.T) {
	report := Compute(Input{Ratings: []models.Rating{
		{GameID: 1, Stars: 5}, {GameID: 1, Stars: 4}, {GameID: 1, Stars: 4},
	}})
	require.Len(t, report.Votes, 1)
	assert.Equal(t, 4.3, report.Votes[0].AverageStars)
}

func TestCompute_Categories(t *testing.T) {
	in := fixture()
	report := Compute(in)

	require.Len(t, report.Categories, 2)

	strategy := report.Categories[0]
	assert.Equal(t, in.Categories[0].ID.Hex(), strategy.CategoryID)
	assert.Equal(t, "Strategy", strategy.Name, "current category name wins over the snapshot")
	assert.Equal(t, 2, strategy.Rankings)
	assert.Equal(t, 2.5, strategy.AverageFilled)
	require.NotNil(t, strategy.Leader)
	assert.Equal(t, "Brass", strategy.Leader.Name)
	require.NotNil(t, strategy.AverageStars)
	assert.Equal(t, 3.8, *strategy.AverageStars)
	assert.Equal(t, 5, strategy.Votes)

	party := report.Categories[1]
	assert.Equal(t, "Party", party.Name)
	assert.Equal(t, 1, party.Rankings)
	assert.Nil(t, party.AverageStars)
	require.NotNil(t, party.Leader)
	assert.Equal(t, "Codenames", party.Leader.Name)
}

func TestCompute_Empty(t *testing.T) {
	report := Compute(Input{})
	assert.Zero(t, report.TotalRankings)
	assert.Empty(t, report.Ranking)
	assert.Empty(t, report.Votes)
	assert.Empty(t, report.Categories)
}

func TestRenderVotesChart(t *testing.T) {
	pngMagic := []byte("\x89PNG")

	t.Run("with votes", func(t *testing.T) {
		data, err := RenderVotesChart(Compute(fixture()))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))
	})

	t.Run("placeholder without votes", func(t *testing.T) {
		data, err := RenderVotesChart(Report{})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))
	})
}

func TestExportXLSX(t *testing.T) {
	data, err := ExportXLSX(Compute(fixture()))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{RankingSheet, VotesSheet, CategoriesSheet}, f.GetSheetList())

	rows, err := f.GetRows(RankingSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Position", "Game ID", "Name", "Appearances", "Average position"}, rows[0])
	assert.Equal(t, []string{"1", "4", "Codenames", "1", "1"}, rows[1])

	rows, err = f.GetRows(VotesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "great | solid", rows[2][4])

	rows, err = f.GetRows(CategoriesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Strategy", rows[1][0])
}
