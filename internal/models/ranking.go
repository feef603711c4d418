package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxRankingPositions caps the number of slots in a tier list.
const MaxRankingPositions = 10

// RankedGame is the snapshot of a game stored in a ranking slot.
type RankedGame struct {
	ID    int    `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image" json:"image"`
}

// Ranking is a user's ordered placement of games from one category.
// Positions is keyed by the position number ("1".."10"); a nil value is an empty slot.
type Ranking struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty"`
	UserID       uint                   `bson:"user_id"`
	UserName     string                 `bson:"user_name"`
	CategoryID   primitive.ObjectID     `bson:"category_id"`
	CategoryName string                 `bson:"category_name"`
	Positions    map[string]*RankedGame `bson:"positions"`
	UpdatedAt    time.Time              `bson:"updated_at"`
}

// At returns the game placed at position pos, or nil.
func (r *Ranking) At(pos int) *RankedGame {
	if r.Positions == nil {
		return nil
	}
	return r.Positions[strconv.Itoa(pos)]
}

// Filled returns the number of occupied positions.
func (r *Ranking) Filled() int {
	n := 0
	for _, g := range r.Positions {
		if g != nil {
			n++
		}
	}
	return n
}
