package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"gamesrank/backend/internal/models"

	"golang.org/x/oauth2"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks gamesrank/backend/internal/catalog Source

// Source lists games from an external system.
type Source interface {
	FetchGames(ctx context.Context) ([]models.Game, error)
}

// ErrUpstream wraps failures of the external game-listing API.
var ErrUpstream = errors.New("game listing API failed")

// maxListingBytes bounds the size of an API response.
const maxListingBytes = 32 << 20

// HTTPSource reads the listing from a JSON endpoint. The body is either an array of
// games or an object with a "games" array; field names match the CSV headers.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource builds a source for url. A non-empty token is sent as a bearer token.
func NewHTTPSource(url, token string) *HTTPSource {
	client := &http.Client{Timeout: 30 * time.Second}
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, client)
		client = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
		client.Timeout = 30 * time.Second
	}
	return &HTTPSource{URL: url, Client: client}
}

func (s *HTTPSource) FetchGames(ctx context.Context) ([]models.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUpstream, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListingBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	return decodeListing(body)
}

func decodeListing(body []byte) ([]models.Game, error) {
	body = bytes.TrimSpace(body)
	var games []models.Game
	if len(body) > 0 && body[0] == '[' {
		if err := json.Unmarshal(body, &games); err != nil {
			return nil, fmt.Errorf("%w: decode listing: %v", ErrUpstream, err)
		}
		return games, nil
	}

	var envelope struct {
		Games []models.Game `json:"games"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %v", ErrUpstream, err)
	}
	return envelope.Games, nil
}
