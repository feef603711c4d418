package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinStars = 1
	MaxStars = 5
)

// Rating is a user's star score and comment for a single game, unique per (user, game).
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	GameID    int                `bson:"game_id"`
	UserID    uint               `bson:"user_id"`
	UserName  string             `bson:"user_name"`
	Stars     int                `bson:"stars"`
	Comment   string             `bson:"comment"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
