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

type mongoCategoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository returns a CategoryRepository backed by the categories collection.
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{coll: db.Collection(database.CategoriesCollection)}
}

func (r *mongoCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	return findAll[models.Category](ctx, r.coll, bson.M{}, options.Find().SetSort(byName))
}

func (r *mongoCategoryRepository) ListNonEmpty(ctx context.Context) ([]models.Category, error) {
	// "games.0" exists only when the array has at least one element.
	return findAll[models.Category](ctx, r.coll, bson.M{"games.0": bson.M{"$exists": true}}, options.Find().SetSort(byName))
}

func (r *mongoCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil, translateMongo(err)
	}
	return &category, nil
}

func (r *mongoCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.Games == nil {
		category.Games = []int{}
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	result, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("create category: %w", translateMongo(err))
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoCategoryRepository) Rename(ctx context.Context, id primitive.ObjectID, name string) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{"name": name}})
}

func (r *mongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCategoryRepository) AddGame(ctx context.Context, id primitive.ObjectID, gameID int) error {
	return r.update(ctx, id, bson.M{"$addToSet": bson.M{"games": gameID}})
}

func (r *mongoCategoryRepository) RemoveGame(ctx context.Context, id primitive.ObjectID, gameID int) error {
	return r.update(ctx, id, bson.M{"$pull": bson.M{"games": gameID}})
}

func (r *mongoCategoryRepository) RemoveGameEverywhere(ctx context.Context, gameID int) error {
	if _, err := r.coll.UpdateMany(ctx, bson.M{"games": gameID}, bson.M{"$pull": bson.M{"games": gameID}}); err != nil {
		return fmt.Errorf("remove game %d from categories: %w", gameID, err)
	}
	return nil
}

func (r *mongoCategoryRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
