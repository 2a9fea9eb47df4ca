package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"mood-movie-discovery/internal/discover"
	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/session"
	"mood-movie-discovery/internal/taxonomy"
	"mood-movie-discovery/internal/tmdb"
)

const (
	discoverCacheTTL = 5 * time.Minute
	listCacheTTL     = 10 * time.Minute

	// Curated paths carry a fixed high match score.
	curatedMoodMatch = 9
)

// ErrPathNotFound is returned for an unknown curated path id.
var ErrPathNotFound = errors.New("curated path not found")

// MovieSource is the external movie metadata provider the discovery
// service searches against.
type MovieSource interface {
	discover.Searcher
	FetchList(ctx context.Context, listType string) (discover.Page, error)
	Configured() bool
}

// DiscoveryService runs mood searches: query building, tiered fallback,
// scoring, and decade post-filtering.
type DiscoveryService struct {
	catalog  *taxonomy.Catalog
	source   MovieSource
	redis    *redis.Client
	sessions *session.Manager
	now      func() time.Time
}

// NewDiscoveryService creates a DiscoveryService. rdb may be nil.
func NewDiscoveryService(cat *taxonomy.Catalog, source MovieSource, rdb *redis.Client, sessions *session.Manager) *DiscoveryService {
	return &DiscoveryService{
		catalog:  cat,
		source:   source,
		redis:    rdb,
		sessions: sessions,
		now:      time.Now,
	}
}

// ListResponse is the trending/popular/top-rated list response.
type ListResponse struct {
	Movies       []models.Movie         `json:"movies"`
	TotalResults int                    `json:"total_results"`
	TotalPages   int                    `json:"total_pages"`
	Paths        []taxonomy.CuratedPath `json:"paths"`
}

// PathResponse is the curated-path response.
type PathResponse struct {
	Movies       []models.ScoredMovie `json:"movies"`
	TotalResults int                  `json:"total_results"`
	TotalPages   int                  `json:"total_pages"`
	Path         taxonomy.CuratedPath `json:"path"`
}

// Discover executes a mood search for one user. The session generation
// taken at the start guards against a superseded search overwriting newer
// results if it finishes late.
func (s *DiscoveryService) Discover(ctx context.Context, userScope string, sel models.FilterSelection) (*models.DiscoverResponse, error) {
	if !s.source.Configured() {
		return nil, tmdb.ErrNotConfigured
	}

	sess := s.sessions.Get(userScope)
	generation := sess.Begin(sel)

	cacheKey := fmt.Sprintf("discover:%s:%v:%v:%s:%s",
		sel.Mood, sel.Genres, sel.Decades, sel.WatchingWith, sel.CombineMode)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var resp models.DiscoverResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			slog.Debug("discover cache hit", "key", cacheKey)
			sess.Commit(generation, resp.Movies)
			return &resp, nil
		}
	}

	q := discover.BuildQuery(sel, s.catalog)

	outcome, err := discover.Search(ctx, s.source, q)
	if err != nil {
		return nil, fmt.Errorf("mood search: %w", err)
	}

	now := s.now()
	scored := make([]models.ScoredMovie, 0, len(outcome.Results))
	for _, m := range outcome.Results {
		m.PosterPath = models.AbsolutePosterURL(m.PosterPath)
		scored = append(scored, models.ScoredMovie{
			Movie:           m,
			MoodMatch:       discover.Score(m, sel, q.Genres, s.catalog, now),
			VibeDescription: q.VibeDescription,
		})
	}

	// TMDB only accepts one contiguous date range, so strict decade
	// membership is enforced here.
	filtered := discover.FilterByDecade(scored, sel.Decades)
	noDecadeResults := len(sel.Decades) > 0 && len(scored) > 0 && len(filtered) == 0

	resp := &models.DiscoverResponse{
		Movies:                  filtered,
		TotalResults:            outcome.TotalResults,
		TotalPages:              outcome.TotalPages,
		VibeDescription:         q.VibeDescription,
		WatchContextDescription: q.ContextDescription,
		HasFallback:             outcome.Fallback,
		NoDecadeResults:         noDecadeResults,
		AppliedFilters: models.AppliedFilters{
			Mood:         sel.Mood,
			Genres:       q.Genres,
			Decades:      sel.Decades,
			WatchingWith: sel.WatchingWith,
			CombineMode:  sel.CombineMode,
		},
	}

	if !sess.Commit(generation, filtered) {
		slog.Debug("discarding results from superseded search", "user", userScope)
	}

	if data, err := json.Marshal(resp); err == nil {
		s.setCache(ctx, cacheKey, string(data), discoverCacheTTL)
	}

	return resp, nil
}

// FetchList returns one of the fixed TMDB lists plus the curated path
// descriptors, without per-result scoring.
func (s *DiscoveryService) FetchList(ctx context.Context, listType string) (*ListResponse, error) {
	if !s.source.Configured() {
		return nil, tmdb.ErrNotConfigured
	}

	cacheKey := "list:" + listType
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var resp ListResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			slog.Debug("list cache hit", "key", cacheKey)
			return &resp, nil
		}
	}

	page, err := s.source.FetchList(ctx, listType)
	if err != nil {
		return nil, fmt.Errorf("fetch %s list: %w", listType, err)
	}

	movies := make([]models.Movie, 0, len(page.Results))
	for _, m := range page.Results {
		m.PosterPath = models.AbsolutePosterURL(m.PosterPath)
		movies = append(movies, m)
	}

	resp := &ListResponse{
		Movies:       movies,
		TotalResults: page.TotalResults,
		TotalPages:   page.TotalPages,
		Paths:        s.catalog.CuratedPaths,
	}

	if data, err := json.Marshal(resp); err == nil {
		s.setCache(ctx, cacheKey, string(data), listCacheTTL)
	}

	return resp, nil
}

// CuratedPath runs a preset filter bundle through the regular query
// builder. Results carry a fixed high match score and the path's own
// description.
func (s *DiscoveryService) CuratedPath(ctx context.Context, pathID string) (*PathResponse, error) {
	if !s.source.Configured() {
		return nil, tmdb.ErrNotConfigured
	}

	path, ok := s.catalog.Path(pathID)
	if !ok {
		return nil, ErrPathNotFound
	}

	sel := models.FilterSelection{
		Mood:         path.Mood,
		Genres:       path.Genres,
		WatchingWith: path.WatchingWith,
		CombineMode:  models.CombineOR,
	}
	if len(path.Decades) > 0 {
		sel.Decades = path.Decades[:1]
	}

	q := discover.BuildQuery(sel, s.catalog)
	// The preset's hand-picked keywords replace the derived set.
	if len(path.Keywords) > 0 {
		q.Keywords = path.Keywords
	}

	page, err := s.source.Discover(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("curated path %s: %w", pathID, err)
	}

	movies := make([]models.ScoredMovie, 0, len(page.Results))
	for _, m := range page.Results {
		m.PosterPath = models.AbsolutePosterURL(m.PosterPath)
		movies = append(movies, models.ScoredMovie{
			Movie:           m,
			MoodMatch:       curatedMoodMatch,
			VibeDescription: path.Description,
		})
	}

	return &PathResponse{
		Movies:       movies,
		TotalResults: page.TotalResults,
		TotalPages:   page.TotalPages,
		Path:         path,
	}, nil
}

// ---- Redis Helpers ----

func (s *DiscoveryService) getFromCache(ctx context.Context, key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(ctx, key).Result()
}

func (s *DiscoveryService) setCache(ctx context.Context, key, value string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
