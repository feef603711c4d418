// Package app connects the stores and builds the services shared by the server
// and the command line tool.
package app

import (
	"context"
	"errors"
	"fmt"

	"gamesrank/backend/internal/catalog"
	"gamesrank/backend/internal/config"
	"gamesrank/backend/internal/database"
	"gamesrank/backend/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the open connections and everything built on top of them.
type App struct {
	Users      repository.UserRepository
	Games      repository.GameRepository
	Categories repository.CategoryRepository
	Rankings   repository.RankingRepository
	Ratings    repository.RatingRepository
	Catalog    *catalog.Service

	db    *gorm.DB
	mongo *mongo.Client
	log   *zap.Logger
}

// Open connects to Postgres and Mongo using cfg.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	client, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	docs := client.Database(cfg.MongoDatabase)

	games := repository.NewGameRepository(docs)
	return &App{
		Users:      repository.NewUserRepository(db),
		Games:      games,
		Categories: repository.NewCategoryRepository(docs),
		Rankings:   repository.NewRankingRepository(docs),
		Ratings:    repository.NewRatingRepository(docs),
		Catalog:    catalog.NewService(games, Source(cfg), log),
		db:         db,
		mongo:      client,
		log:        log,
	}, nil
}

// Source returns the external game listing, or nil when GAME_API_URL is unset.
func Source(cfg *config.Config) catalog.Source {
	if cfg.GameAPIURL == "" {
		return nil
	}
	return catalog.NewHTTPSource(cfg.GameAPIURL, cfg.GameAPIToken)
}

// Close releases both connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.mongo.Disconnect(ctx); err != nil {
		errs = append(errs, fmt.Errorf("disconnect mongo: %w", err))
	}
	if err := database.Close(a.db); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	a.log.Info("Connections closed")
	return nil
}
