package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gamesrank/backend/internal/repository"

	"go.uber.org/zap"
)

// ErrSourceNotConfigured is returned by Sync when no external API is set up.
var ErrSourceNotConfigured = errors.New("game listing API is not configured")

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type SyncResult struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// Service runs catalog imports and syncs against the game repository.
type Service struct {
	games  repository.GameRepository
	source Source
	log    *zap.Logger
}

// NewService returns a Service. source may be nil when no external API is configured.
func NewService(games repository.GameRepository, source Source, log *zap.Logger) *Service {
	return &Service{games: games, source: source, log: log.Named("catalog")}
}

// Import replaces the whole catalog with the games of the given file.
// The catalog is left untouched when the file cannot be parsed or holds no games.
func (s *Service) Import(ctx context.Context, filename string, r io.Reader) (ImportResult, error) {
	parser, err := ParserFor(filename)
	if err != nil {
		return ImportResult{}, err
	}

	games, skipped, err := parser.Parse(r)
	if err != nil {
		return ImportResult{Skipped: skipped}, err
	}

	if err := s.games.ReplaceAll(ctx, games); err != nil {
		return ImportResult{}, fmt.Errorf("replace catalog: %w", err)
	}

	s.log.Info("Catalog imported",
		zap.String("file", filename),
		zap.Int("imported", len(games)),
		zap.Int("skipped", skipped))
	return ImportResult{Imported: len(games), Skipped: skipped}, nil
}

// Sync upserts every game of the external listing by BGG id.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	if s.source == nil {
		return SyncResult{}, ErrSourceNotConfigured
	}

	games, err := s.source.FetchGames(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	result := SyncResult{Fetched: len(games)}
	for _, game := range games {
		if game.BGGID == 0 || game.Name == "" {
			result.Skipped++
			continue
		}
		inserted, err := s.games.Upsert(ctx, game)
		if err != nil {
			return result, fmt.Errorf("sync game %d: %w", game.BGGID, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	s.log.Info("Catalog synced",
		zap.Int("fetched", result.Fetched),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped))
	return result, nil
}
