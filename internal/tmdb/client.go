package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"mood-movie-discovery/internal/discover"
	"mood-movie-discovery/internal/models"
)

// ErrNotConfigured is returned when no TMDB API key is set. Callers must
// surface this as a service-unavailable condition, never as empty results.
var ErrNotConfigured = fmt.Errorf("tmdb: API key not configured")

// Client is the TMDB API client.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// listResponse is the common TMDB paged list shape.
type listResponse struct {
	Page         int            `json:"page"`
	Results      []models.Movie `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Discover executes one discover/movie call with the encoded query.
// Implements discover.Searcher.
func (c *Client) Discover(ctx context.Context, q discover.Query) (discover.Page, error) {
	if !c.Configured() {
		return discover.Page{}, ErrNotConfigured
	}

	params := q.Encode()
	params.Set("api_key", c.apiKey)
	endpoint := fmt.Sprintf("%s/discover/movie?%s", c.baseURL, params.Encode())

	slog.Debug("fetching TMDB discover", "sort_by", q.SortBy, "genres", q.Genres)
	var result listResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return discover.Page{}, err
	}
	return discover.Page{
		Results:      result.Results,
		TotalResults: result.TotalResults,
		TotalPages:   result.TotalPages,
	}, nil
}

// List endpoints without filter parameters.
const (
	ListTrending = "trending"
	ListPopular  = "popular"
	ListTopRated = "top_rated"
)

// FetchList retrieves one of the fixed TMDB lists.
func (c *Client) FetchList(ctx context.Context, listType string) (discover.Page, error) {
	if !c.Configured() {
		return discover.Page{}, ErrNotConfigured
	}

	var path string
	switch listType {
	case ListPopular:
		path = "/movie/popular"
	case ListTopRated:
		path = "/movie/top_rated"
	default:
		path = "/trending/movie/week"
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", "en-US")
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	slog.Debug("fetching TMDB list", "list", listType)
	var result listResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return discover.Page{}, err
	}
	return discover.Page{
		Results:      result.Results,
		TotalResults: result.TotalResults,
		TotalPages:   result.TotalPages,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode TMDB response: %w", err)
	}
	return nil
}
