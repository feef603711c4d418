package repository

import (
	"regexp"
	"slices"
	"strings"

	"gamesrank/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GameFilter narrows a catalog listing. Nil pointers and empty strings mean "no constraint".
type GameFilter struct {
	Name       string
	Year       *int
	MinPlayers *int // game.MinPlayers >= value
	MaxPlayers *int // game.MaxPlayers <= value

	// When ScopeToIDs is set only games whose BGG id is in IDs match, even if IDs is empty.
	IDs        []int
	ScopeToIDs bool
	ExcludeIDs []int
}

// BSON renders the filter as a mongo query document.
func (f GameFilter) BSON() bson.M {
	query := bson.M{}
	if f.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Name), "$options": "i"}
	}
	if f.Year != nil {
		query["year_published"] = *f.Year
	}
	if f.MinPlayers != nil {
		query["min_players"] = bson.M{"$gte": *f.MinPlayers}
	}
	if f.MaxPlayers != nil {
		query["max_players"] = bson.M{"$lte": *f.MaxPlayers}
	}

	id := bson.M{}
	if f.ScopeToIDs {
		ids := f.IDs
		if ids == nil {
			ids = []int{}
		}
		id["$in"] = ids
	}
	if len(f.ExcludeIDs) > 0 {
		id["$nin"] = f.ExcludeIDs
	}
	if len(id) > 0 {
		query["bgg_id"] = id
	}
	return query
}

// Matches applies the filter to a single game in memory.
func (f GameFilter) Matches(g models.Game) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Year != nil && g.YearPublished != *f.Year {
		return false
	}
	if f.MinPlayers != nil && g.MinPlayers < *f.MinPlayers {
		return false
	}
	if f.MaxPlayers != nil && g.MaxPlayers > *f.MaxPlayers {
		return false
	}
	if f.ScopeToIDs && !slices.Contains(f.IDs, g.BGGID) {
		return false
	}
	if slices.Contains(f.ExcludeIDs, g.BGGID) {
		return false
	}
	return true
}
