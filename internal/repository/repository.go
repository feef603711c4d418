// Package repository holds the persistence layer: users live in the relational
// database (gorm), everything else in the document store (mongo).
package repository

import (
	"context"
	"errors"

	"gamesrank/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("record already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, query string, page, limit int) ([]models.User, int64, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

type GameRepository interface {
	// List returns one page of games matching the filter, ordered by name, and the total match count.
	List(ctx context.Context, filter GameFilter, page, limit int) ([]models.Game, int64, error)
	FindByBGGID(ctx context.Context, id int) (*models.Game, error)
	// FindByBGGIDs returns the games with the given ids ordered by name. Unknown ids are ignored.
	FindByBGGIDs(ctx context.Context, ids []int) ([]models.Game, error)
	// ReplaceAll swaps the whole catalog for games. On error the previous catalog is kept.
	ReplaceAll(ctx context.Context, games []models.Game) error
	// Upsert inserts or updates a game keyed by BGG id. It reports whether a new document was created.
	Upsert(ctx context.Context, game models.Game) (bool, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	// ListNonEmpty returns the categories that have at least one game.
	ListNonEmpty(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Rename(ctx context.Context, id primitive.ObjectID, name string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddGame(ctx context.Context, id primitive.ObjectID, gameID int) error
	RemoveGame(ctx context.Context, id primitive.ObjectID, gameID int) error
	// RemoveGameEverywhere pulls the game out of every category's list.
	RemoveGameEverywhere(ctx context.Context, gameID int) error
}

type RankingRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ranking, error)
	FindByUserAndCategory(ctx context.Context, userID uint, categoryID primitive.ObjectID) (*models.Ranking, error)
	// Upsert stores the ranking keyed by (user, category) and sets its ID.
	Upsert(ctx context.Context, ranking *models.Ranking) error
	ListByUser(ctx context.Context, userID uint) ([]models.Ranking, error)
	List(ctx context.Context) ([]models.Ranking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type RatingRepository interface {
	// Upsert stores the rating keyed by (user, game). It reports whether a new document was created.
	Upsert(ctx context.Context, rating *models.Rating) (bool, error)
	Find(ctx context.Context, userID uint, gameID int) (*models.Rating, error)
	// ListByGame returns the ratings of a game, newest first.
	ListByGame(ctx context.Context, gameID int, commentedOnly bool) ([]models.Rating, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Rating, error)
	List(ctx context.Context) ([]models.Rating, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByGame(ctx context.Context, gameID int) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}
