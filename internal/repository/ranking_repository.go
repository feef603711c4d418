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

type mongoRankingRepository struct {
	coll *mongo.Collection
}

// NewRankingRepository returns a RankingRepository backed by the rankings collection.
func NewRankingRepository(db *mongo.Database) RankingRepository {
	return &mongoRankingRepository{coll: db.Collection(database.RankingsCollection)}
}

func (r *mongoRankingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ranking, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRankingRepository) FindByUserAndCategory(ctx context.Context, userID uint, categoryID primitive.ObjectID) (*models.Ranking, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "category_id": categoryID})
}

func (r *mongoRankingRepository) Upsert(ctx context.Context, ranking *models.Ranking) error {
	if ranking.UpdatedAt.IsZero() {
		ranking.UpdatedAt = time.Now().UTC()
	}
	filter := bson.M{"user_id": ranking.UserID, "category_id": ranking.CategoryID}
	update := bson.M{"$set": bson.M{
		"user_name":     ranking.UserName,
		"category_name": ranking.CategoryName,
		"positions":     ranking.Positions,
		"updated_at":    ranking.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var stored models.Ranking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return fmt.Errorf("upsert ranking: %w", err)
	}
	ranking.ID = stored.ID
	return nil
}

func (r *mongoRankingRepository) ListByUser(ctx context.Context, userID uint) ([]models.Ranking, error) {
	return findAll[models.Ranking](ctx, r.coll, bson.M{"user_id": userID}, options.Find().SetSort(bson.D{{Key: "category_name", Value: 1}}))
}

func (r *mongoRankingRepository) List(ctx context.Context) ([]models.Ranking, error) {
	return findAll[models.Ranking](ctx, r.coll, bson.M{})
}

func (r *mongoRankingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete ranking: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRankingRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoRankingRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *mongoRankingRepository) findOne(ctx context.Context, filter bson.M) (*models.Ranking, error) {
	var ranking models.Ranking
	if err := r.coll.FindOne(ctx, filter).Decode(&ranking); err != nil {
		return nil, translateMongo(err)
	}
	return &ranking, nil
}
