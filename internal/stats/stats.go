// Package stats aggregates rankings and ratings into the global statistics report.
package stats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"gamesrank/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// commentsPerGame is how many comments each voted game carries in the report.
const commentsPerGame = 2

type GameStanding struct {
	GameID          int     `json:"game_id"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Appearances     int     `json:"appearances"`
	AveragePosition float64 `json:"average_position"`
}

type GameVotes struct {
	GameID       int      `json:"game_id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	AverageStars float64  `json:"average_stars"`
	TotalVotes   int      `json:"total_votes"`
	Comments     []string `json:"comments"`
}

type CategoryStats struct {
	CategoryID    string        `json:"category_id"`
	Name          string        `json:"name"`
	Rankings      int           `json:"rankings"`
	AverageFilled float64       `json:"average_filled"`
	Leader        *GameStanding `json:"leader"`
	// AverageStars is the mean star rating over the category's current member games.
	// Nil when none of them has been rated or the category no longer exists.
	AverageStars *float64 `json:"average_stars"`
	Votes        int      `json:"votes"`
}

type Report struct {
	TotalRankings int             `json:"total_rankings"`
	TotalVotes    int             `json:"total_votes"`
	Ranking       []GameStanding  `json:"ranking_global"`
	Votes         []GameVotes     `json:"votes"`
	Categories    []CategoryStats `json:"categories"`
}

// Input is everything Compute reads. Games only needs the rated games and the
// members of the listed categories.
type Input struct {
	Rankings   []models.Ranking
	Ratings    []models.Rating
	Games      map[int]models.Game
	Categories []models.Category
}

// Compute builds the report in a single pass over rankings and ratings.
func Compute(in Input) Report {
	return Report{
		TotalRankings: len(in.Rankings),
		TotalVotes:    len(in.Ratings),
		Ranking:       standings(in.Rankings),
		Votes:         votes(in.Ratings, in.Games),
		Categories:    categories(in),
	}
}

type positionAcc struct {
	name, image string
	sum, count  int
}

// standings averages the position of every game placed in the given rankings.
// Name and image come from the first snapshot seen.
func standings(rankings []models.Ranking) []GameStanding {
	acc := map[int]*positionAcc{}
	for _, r := range rankings {
		for key, g := range r.Positions {
			if g == nil || g.ID == 0 {
				continue
			}
			pos, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			a, ok := acc[g.ID]
			if !ok {
				a = &positionAcc{name: g.Name, image: g.Image}
				acc[g.ID] = a
			}
			a.sum += pos
			a.count++
		}
	}

	out := make([]GameStanding, 0, len(acc))
	for id, a := range acc {
		out = append(out, GameStanding{
			GameID:          id,
			Name:            a.name,
			Image:           a.image,
			Appearances:     a.count,
			AveragePosition: round(float64(a.sum)/float64(a.count), 2),
		})
	}
	slices.SortFunc(out, func(a, b GameStanding) int {
		return cmp.Or(
			cmp.Compare(a.AveragePosition, b.AveragePosition),
			cmp.Compare(b.Appearances, a.Appearances),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.GameID, b.GameID),
		)
	})
	return out
}

type voteAcc struct {
	sum      int
	count    int
	comments []string
}

func votes(ratings []models.Rating, games map[int]models.Game) []GameVotes {
	acc := map[int]*voteAcc{}
	for _, r := range ratings {
		a, ok := acc[r.GameID]
		if !ok {
			a = &voteAcc{}
			acc[r.GameID] = a
		}
		a.sum += r.Stars
		a.count++
		if r.Comment != "" && len(a.comments) < commentsPerGame {
			a.comments = append(a.comments, r.Comment)
		}
	}

	out := make([]GameVotes, 0, len(acc))
	for id, a := range acc {
		v := GameVotes{
			GameID:       id,
			Name:         fmt.Sprintf("Game %d", id),
			AverageStars: round(float64(a.sum)/float64(a.count), 1),
			TotalVotes:   a.count,
			Comments:     a.comments,
		}
		if v.Comments == nil {
			v.Comments = []string{}
		}
		if g, ok := games[id]; ok {
			v.Name = g.Name
			v.Image = g.ImagePath
		}
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b GameVotes) int {
		return cmp.Or(
			cmp.Compare(b.AverageStars, a.AverageStars),
			cmp.Compare(b.TotalVotes, a.TotalVotes),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.GameID, b.GameID),
		)
	})
	return out
}

func categories(in Input) []CategoryStats {
	known := make(map[primitive.ObjectID]models.Category, len(in.Categories))
	for _, c := range in.Categories {
		known[c.ID] = c
	}

	grouped := map[primitive.ObjectID][]models.Ranking{}
	var order []primitive.ObjectID
	for _, r := range in.Rankings {
		if _, ok := grouped[r.CategoryID]; !ok {
			order = append(order, r.CategoryID)
		}
		grouped[r.CategoryID] = append(grouped[r.CategoryID], r)
	}

	starsByGame := map[int][2]int{}
	for _, r := range in.Ratings {
		s := starsByGame[r.GameID]
		starsByGame[r.GameID] = [2]int{s[0] + r.Stars, s[1] + 1}
	}

	out := make([]CategoryStats, 0, len(order))
	for _, id := range order {
		rankings := grouped[id]
		cs := CategoryStats{
			CategoryID: id.Hex(),
			Name:       rankings[0].CategoryName,
			Rankings:   len(rankings),
		}

		filled := 0
		for _, r := range rankings {
			filled += r.Filled()
		}
		cs.AverageFilled = round(float64(filled)/float64(len(rankings)), 2)

		if leaders := standings(rankings); len(leaders) > 0 {
			cs.Leader = &leaders[0]
		}

		if c, ok := known[id]; ok {
			cs.Name = c.Name
			sum, count := 0, 0
			for _, gameID := range c.Games {
				s := starsByGame[gameID]
				sum += s[0]
				count += s[1]
			}
			if count > 0 {
				avg := round(float64(sum)/float64(count), 1)
				cs.AverageStars = &avg
				cs.Votes = count
			}
		}
		out = append(out, cs)
	}

	slices.SortFunc(out, func(a, b CategoryStats) int {
		return cmp.Or(cmp.Compare(b.Rankings, a.Rankings), cmp.Compare(a.Name, b.Name))
	})
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
