package models

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is an administrator-curated group of games used as the universe for a ranking.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Games     []int              `bson:"games"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Contains reports whether the game with the given BGG id is a member of the category.
func (c *Category) Contains(gameID int) bool {
	return slices.Contains(c.Games, gameID)
}
