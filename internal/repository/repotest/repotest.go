// Package repotest provides in-memory implementations of the repository
// interfaces for tests.
package repotest

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store bundles one in-memory repository per collection.
type Store struct {
	Users      *Users
	Games      *Games
	Categories *Categories
	Rankings   *Rankings
	Ratings    *Ratings
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		Users:      &Users{},
		Games:      &Games{},
		Categories: &Categories{},
		Rankings:   &Rankings{},
		Ratings:    &Ratings{},
	}
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := min(start+limit, len(items))
	return slices.Clone(items[start:end])
}

// region --- Users ---

type Users struct {
	mu    sync.Mutex
	users []models.User
	// Err, when set, is returned by every method.
	Err error
}

var _ repository.UserRepository = (*Users)(nil)

func (r *Users) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicate
		}
	}
	user.ID = uint(len(r.users) + 1)
	user.CreatedAt = time.Now()
	r.users = append(r.users, *user)
	return nil
}

func (r *Users) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Users) List(_ context.Context, query string, page, limit int) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, 0, r.Err
	}
	var matched []models.User
	q := strings.ToLower(query)
	for _, u := range r.users {
		if q == "" || strings.Contains(strings.ToLower(u.Email), q) || strings.Contains(strings.ToLower(u.Name), q) {
			matched = append(matched, u)
		}
	}
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func (r *Users) SetActive(_ context.Context, id uint, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].IsActive = active
			return nil
		}
	}
	return repository.ErrNotFound
}

// endregion

// region --- Games ---

type Games struct {
	mu    sync.Mutex
	games []models.Game
	Err   error
}

var _ repository.GameRepository = (*Games)(nil)

// Seed appends games without going through Upsert.
func (r *Games) Seed(games ...models.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games = append(r.games, games...)
}

// All returns a copy of every stored game.
func (r *Games) All() []models.Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.games)
}

func (r *Games) sorted(filter repository.GameFilter) []models.Game {
	var matched []models.Game
	for _, g := range r.games {
		if filter.Matches(g) {
			matched = append(matched, g)
		}
	}
	slices.SortStableFunc(matched, func(a, b models.Game) int { return cmp.Compare(a.Name, b.Name) })
	return matched
}

func (r *Games) List(_ context.Context, filter repository.GameFilter, page, limit int) ([]models.Game, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, 0, r.Err
	}
	matched := r.sorted(filter)
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func (r *Games) FindByBGGID(_ context.Context, id int) (*models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, g := range r.games {
		if g.BGGID == id {
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Games) FindByBGGIDs(_ context.Context, ids []int) ([]models.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	games := r.sorted(repository.GameFilter{IDs: ids, ScopeToIDs: true})
	if games == nil {
		games = []models.Game{}
	}
	return games, nil
}

func (r *Games) ReplaceAll(_ context.Context, games []models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.games = slices.Clone(games)
	return nil
}

func (r *Games) Upsert(_ context.Context, game models.Game) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	for i := range r.games {
		if r.games[i].BGGID == game.BGGID {
			r.games[i] = game
			return false, nil
		}
	}
	r.games = append(r.games, game)
	return true, nil
}

func (r *Games) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	n := len(r.games)
	r.games = slices.DeleteFunc(r.games, func(g models.Game) bool { return g.BGGID == id })
	if len(r.games) == n {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Games) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	n := len(r.games)
	r.games = nil
	return int64(n), nil
}

// endregion

// region --- Categories ---

type Categories struct {
	mu         sync.Mutex
	categories []models.Category
	Err        error
}

var _ repository.CategoryRepository = (*Categories)(nil)

func (r *Categories) sortedBy(keep func(models.Category) bool) []models.Category {
	out := []models.Category{}
	for _, c := range r.categories {
		if keep(c) {
			c.Games = slices.Clone(c.Games)
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Category) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

func (r *Categories) List(_ context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.sortedBy(func(models.Category) bool { return true }), nil
}

func (r *Categories) ListNonEmpty(_ context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.sortedBy(func(c models.Category) bool { return len(c.Games) > 0 }), nil
}

func (r *Categories) find(id primitive.ObjectID) *models.Category {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return &r.categories[i]
		}
	}
	return nil
}

func (r *Categories) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	c := r.find(id)
	if c == nil {
		return nil, repository.ErrNotFound
	}
	out := *c
	out.Games = slices.Clone(c.Games)
	return &out, nil
}

func (r *Categories) Create(_ context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.Games == nil {
		category.Games = []int{}
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	stored := *category
	stored.Games = slices.Clone(category.Games)
	r.categories = append(r.categories, stored)
	return nil
}

func (r *Categories) modify(id primitive.ObjectID, fn func(*models.Category)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	c := r.find(id)
	if c == nil {
		return repository.ErrNotFound
	}
	fn(c)
	return nil
}

func (r *Categories) Rename(_ context.Context, id primitive.ObjectID, name string) error {
	return r.modify(id, func(c *models.Category) { c.Name = name })
}

func (r *Categories) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	n := len(r.categories)
	r.categories = slices.DeleteFunc(r.categories, func(c models.Category) bool { return c.ID == id })
	if len(r.categories) == n {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Categories) AddGame(_ context.Context, id primitive.ObjectID, gameID int) error {
	return r.modify(id, func(c *models.Category) {
		if !slices.Contains(c.Games, gameID) {
			c.Games = append(c.Games, gameID)
		}
	})
}

func (r *Categories) RemoveGame(_ context.Context, id primitive.ObjectID, gameID int) error {
	return r.modify(id, func(c *models.Category) {
		c.Games = slices.DeleteFunc(c.Games, func(g int) bool { return g == gameID })
	})
}

func (r *Categories) RemoveGameEverywhere(_ context.Context, gameID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i := range r.categories {
		r.categories[i].Games = slices.DeleteFunc(r.categories[i].Games, func(g int) bool { return g == gameID })
	}
	return nil
}

// endregion

// region --- Rankings ---

type Rankings struct {
	mu       sync.Mutex
	rankings []models.Ranking
	Err      error
}

var _ repository.RankingRepository = (*Rankings)(nil)

func (r *Rankings) filter(keep func(models.Ranking) bool) []models.Ranking {
	out := []models.Ranking{}
	for _, rk := range r.rankings {
		if keep(rk) {
			out = append(out, rk)
		}
	}
	return out
}

func (r *Rankings) findOne(keep func(models.Ranking) bool) (*models.Ranking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, rk := range r.rankings {
		if keep(rk) {
			return &rk, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Rankings) FindByID(_ context.Context, id primitive.ObjectID) (*models.Ranking, error) {
	return r.findOne(func(rk models.Ranking) bool { return rk.ID == id })
}

func (r *Rankings) FindByUserAndCategory(_ context.Context, userID uint, categoryID primitive.ObjectID) (*models.Ranking, error) {
	return r.findOne(func(rk models.Ranking) bool { return rk.UserID == userID && rk.CategoryID == categoryID })
}

func (r *Rankings) Upsert(_ context.Context, ranking *models.Ranking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if ranking.UpdatedAt.IsZero() {
		ranking.UpdatedAt = time.Now().UTC()
	}
	for i := range r.rankings {
		if r.rankings[i].UserID == ranking.UserID && r.rankings[i].CategoryID == ranking.CategoryID {
			ranking.ID = r.rankings[i].ID
			r.rankings[i] = *ranking
			return nil
		}
	}
	ranking.ID = primitive.NewObjectID()
	r.rankings = append(r.rankings, *ranking)
	return nil
}

func (r *Rankings) ListByUser(_ context.Context, userID uint) ([]models.Ranking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := r.filter(func(rk models.Ranking) bool { return rk.UserID == userID })
	slices.SortStableFunc(out, func(a, b models.Ranking) int { return cmp.Compare(a.CategoryName, b.CategoryName) })
	return out, nil
}

func (r *Rankings) List(_ context.Context) ([]models.Ranking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.filter(func(models.Ranking) bool { return true }), nil
}

func (r *Rankings) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	n := len(r.rankings)
	r.rankings = slices.DeleteFunc(r.rankings, func(rk models.Ranking) bool { return rk.ID == id })
	if len(r.rankings) == n {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Rankings) Count(ctx context.Context) (int64, error) {
	all, err := r.List(ctx)
	return int64(len(all)), err
}

func (r *Rankings) CountByUser(ctx context.Context, userID uint) (int64, error) {
	mine, err := r.ListByUser(ctx, userID)
	return int64(len(mine)), err
}

// endregion

// region --- Ratings ---

type Ratings struct {
	mu      sync.Mutex
	ratings []models.Rating
	clock   int
	Err     error
}

var _ repository.RatingRepository = (*Ratings)(nil)

// tick returns a strictly increasing timestamp so ordering is deterministic in tests.
func (r *Ratings) tick() time.Time {
	r.clock++
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.clock) * time.Second)
}

func (r *Ratings) Upsert(_ context.Context, rating *models.Rating) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	now := r.tick()
	for i := range r.ratings {
		stored := &r.ratings[i]
		if stored.UserID == rating.UserID && stored.GameID == rating.GameID {
			stored.UserName = rating.UserName
			stored.Stars = rating.Stars
			stored.Comment = rating.Comment
			stored.UpdatedAt = now
			*rating = *stored
			return false, nil
		}
	}
	rating.ID = primitive.NewObjectID()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	r.ratings = append(r.ratings, *rating)
	return true, nil
}

func (r *Ratings) Find(_ context.Context, userID uint, gameID int) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, rt := range r.ratings {
		if rt.UserID == userID && rt.GameID == gameID {
			return &rt, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Ratings) newestFirst(keep func(models.Rating) bool) []models.Rating {
	out := []models.Rating{}
	for _, rt := range r.ratings {
		if keep(rt) {
			out = append(out, rt)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Rating) int { return b.UpdatedAt.Compare(a.UpdatedAt) })
	return out
}

func (r *Ratings) ListByGame(_ context.Context, gameID int, commentedOnly bool) ([]models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.newestFirst(func(rt models.Rating) bool {
		return rt.GameID == gameID && (!commentedOnly || rt.Comment != "")
	}), nil
}

func (r *Ratings) ListByUser(_ context.Context, userID uint) ([]models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return r.newestFirst(func(rt models.Rating) bool { return rt.UserID == userID }), nil
}

func (r *Ratings) List(_ context.Context) ([]models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return slices.Clone(r.ratings), nil
}

func (r *Ratings) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	n := len(r.ratings)
	r.ratings = slices.DeleteFunc(r.ratings, func(rt models.Rating) bool { return rt.ID == id })
	if len(r.ratings) == n {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Ratings) DeleteByGame(_ context.Context, gameID int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	n := len(r.ratings)
	r.ratings = slices.DeleteFunc(r.ratings, func(rt models.Rating) bool { return rt.GameID == gameID })
	return int64(n - len(r.ratings)), nil
}

func (r *Ratings) Count(ctx context.Context) (int64, error) {
	all, err := r.List(ctx)
	return int64(len(all)), err
}

func (r *Ratings) CountByUser(ctx context.Context, userID uint) (int64, error) {
	mine, err := r.ListByUser(ctx, userID)
	return int64(len(mine)), err
}

// endregion
