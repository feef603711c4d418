package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Game represents a catalog entry. BGGID is the identifier every other document refers to.
type Game struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BGGID          int                `bson:"bgg_id" json:"BGGId"`
	Name           string             `bson:"name" json:"Name"`
	Description    string             `bson:"description" json:"Description"`
	YearPublished  int                `bson:"year_published" json:"YearPublished"`
	GameWeight     float64            `bson:"game_weight" json:"GameWeight"`
	AvgRating      float64            `bson:"avg_rating" json:"AvgRating"`
	MinPlayers     int                `bson:"min_players" json:"MinPlayers"`
	MaxPlayers     int                `bson:"max_players" json:"MaxPlayers"`
	NumUserRatings int                `bson:"num_user_ratings" json:"NumUserRatings"`
	NumExpansions  int                `bson:"num_expansions" json:"NumExpansions"`
	Family         string             `bson:"family,omitempty" json:"Family,omitempty"`
	ImagePath      string             `bson:"image_path,omitempty" json:"ImagePath,omitempty"`
}
