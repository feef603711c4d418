package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names of the document store.
const (
	GamesCollection      = "games"
	CategoriesCollection = "categories"
	RankingsCollection   = "rankings"
	RatingsCollection    = "ratings"
)

// ConnectMongo opens the document store, pings it and ensures the indexes the
// upserts rely on exist.
func ConnectMongo(ctx context.Context, uri, dbName string, log *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Info("Document store connection established.", zap.String("database", dbName))

	if err := EnsureIndexes(ctx, client.Database(dbName)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the uniqueness and lookup indexes of every collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		GamesCollection: GameIndexes(),
		RankingsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "category_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		RatingsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "game_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "game_id", Value: 1}}},
		},
	}
	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

// GameIndexes lists the lookup indexes of the games collection.
func GameIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "bgg_id", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
}
