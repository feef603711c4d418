package repository

import (
	"context"
	"errors"
	"fmt"

	"gamesrank/backend/internal/database"
	"gamesrank/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoGameRepository struct {
	coll *mongo.Collection
}

// NewGameRepository returns a GameRepository backed by the games collection.
func NewGameRepository(db *mongo.Database) GameRepository {
	return &mongoGameRepository{coll: db.Collection(database.GamesCollection)}
}

var byName = bson.D{{Key: "name", Value: 1}}

// stagingSuffix names the collection a catalog import is loaded into before the swap.
const stagingSuffix = "_import"

func (r *mongoGameRepository) List(ctx context.Context, filter GameFilter, page, limit int) ([]models.Game, int64, error) {
	query := filter.BSON()

	totalItems, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count games: %w", err)
	}

	opts := options.Find().
		SetSort(byName).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	games, err := findAll[models.Game](ctx, r.coll, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list games: %w", err)
	}
	return games, totalItems, nil
}

func (r *mongoGameRepository) FindByBGGID(ctx context.Context, id int) (*models.Game, error) {
	var game models.Game
	if err := r.coll.FindOne(ctx, bson.M{"bgg_id": id}).Decode(&game); err != nil {
		return nil, translateMongo(err)
	}
	return &game, nil
}

func (r *mongoGameRepository) FindByBGGIDs(ctx context.Context, ids []int) ([]models.Game, error) {
	if len(ids) == 0 {
		return []models.Game{}, nil
	}
	return findAll[models.Game](ctx, r.coll, bson.M{"bgg_id": bson.M{"$in": ids}}, options.Find().SetSort(byName))
}

// ReplaceAll loads the new catalog into a staging collection and renames it over
// the games collection, so a failed load leaves the current catalog in place.
func (r *mongoGameRepository) ReplaceAll(ctx context.Context, games []models.Game) error {
	if len(games) == 0 {
		if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear games: %w", err)
		}
		return nil
	}

	db := r.coll.Database()
	staging := db.Collection(r.coll.Name() + stagingSuffix)
	if err := staging.Drop(ctx); err != nil {
		return fmt.Errorf("reset staging games: %w", err)
	}
	discard := func() { _ = staging.Drop(context.WithoutCancel(ctx)) }

	if _, err := staging.Indexes().CreateMany(ctx, database.GameIndexes()); err != nil {
		discard()
		return fmt.Errorf("index staging games: %w", err)
	}
	docs := make([]any, len(games))
	for i := range games {
		games[i].ID = primitive.NilObjectID
		docs[i] = games[i]
	}
	if _, err := staging.InsertMany(ctx, docs); err != nil {
		discard()
		return fmt.Errorf("insert games: %w", err)
	}

	rename := bson.D{
		{Key: "renameCollection", Value: db.Name() + "." + staging.Name()},
		{Key: "to", Value: db.Name() + "." + r.coll.Name()},
		{Key: "dropTarget", Value: true},
	}
	if err := db.Client().Database("admin").RunCommand(ctx, rename).Err(); err != nil {
		discard()
		return fmt.Errorf("swap in games: %w", err)
	}
	return nil
}

func (r *mongoGameRepository) Upsert(ctx context.Context, game models.Game) (bool, error) {
	game.ID = primitive.NilObjectID
	result, err := r.coll.ReplaceOne(ctx, bson.M{"bgg_id": game.BGGID}, game, options.Replace().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("upsert game %d: %w", game.BGGID, err)
	}
	return result.UpsertedCount > 0, nil
}

func (r *mongoGameRepository) Delete(ctx context.Context, id int) error {
	result, err := r.coll.DeleteMany(ctx, bson.M{"bgg_id": id})
	if err != nil {
		return fmt.Errorf("delete game %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoGameRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete games: %w", err)
	}
	return result.DeletedCount, nil
}

// findAll runs a query and decodes every document into T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func translateMongo(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
