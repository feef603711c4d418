package repository

import (
	"context"
	"fmt"
	"time"

	"gamesrank/backend/internal/database"
	"gamesrank/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRatingRepository struct {
	coll *mongo.Collection
}

// NewRatingRepository returns a RatingRepository backed by the ratings collection.
func NewRatingRepository(db *mongo.Database) RatingRepository {
	return &mongoRatingRepository{coll: db.Collection(database.RatingsCollection)}
}

var newestFirst = bson.D{{Key: "updated_at", Value: -1}}

func (r *mongoRatingRepository) Upsert(ctx context.Context, rating *models.Rating) (bool, error) {
	now := time.Now().UTC()
	filter := bson.M{"user_id": rating.UserID, "game_id": rating.GameID}
	update := bson.M{
		"$set": bson.M{
			"user_name":  rating.UserName,
			"stars":      rating.Stars,
			"comment":    rating.Comment,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("upsert rating: %w", err)
	}

	stored, err := r.Find(ctx, rating.UserID, rating.GameID)
	if err != nil {
		return false, fmt.Errorf("reload rating: %w", err)
	}
	*rating = *stored
	return result.MatchedCount == 0, nil
}

func (r *mongoRatingRepository) Find(ctx context.Context, userID uint, gameID int) (*models.Rating, error) {
	var rating models.Rating
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "game_id": gameID}).Decode(&rating); err != nil {
		return nil, translateMongo(err)
	}
	return &rating, nil
}

func (r *mongoRatingRepository) ListByGame(ctx context.Context, gameID int, commentedOnly bool) ([]models.Rating, error) {
	filter := bson.M{"game_id": gameID}
	if commentedOnly {
		filter["comment"] = bson.M{"$ne": ""}
	}
	return findAll[models.Rating](ctx, r.coll, filter, options.Find().SetSort(newestFirst))
}

func (r *mongoRatingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	return findAll[models.Rating](ctx, r.coll, bson.M{"user_id": userID}, options.Find().SetSort(newestFirst))
}

func (r *mongoRatingRepository) List(ctx context.Context) ([]models.Rating, error) {
	return findAll[models.Rating](ctx, r.coll, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

func (r *mongoRatingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRatingRepository) DeleteByGame(ctx context.Context, gameID int) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"game_id": gameID})
	if err != nil {
		return 0, fmt.Errorf("delete ratings of game %d: %w", gameID, err)
	}
	return result.DeletedCount, nil
}

func (r *mongoRatingRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoRatingRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
}
