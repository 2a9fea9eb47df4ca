package discover

import (
	"context"
	"fmt"
	"log/slog"

	"mood-movie-discovery/internal/models"
)

// Result-count thresholds for accepting a tier's output.
const (
	primaryMinResults  = 5
	fallbackMinResults = 3
)

// Fallback tier floors. Each tier keeps strictly fewer constraints than
// the one before it; a dropped constraint is never reintroduced.
const (
	tier1VoteFloor = 50
	tier2VoteFloor = 20
)

// Page is one page of discover results from the search provider.
type Page struct {
	Results      []models.Movie
	TotalResults int
	TotalPages   int
}

// Searcher executes a discover query against the movie search provider.
type Searcher interface {
	Discover(ctx context.Context, q Query) (Page, error)
}

// Outcome is the final result of a multi-tier search.
type Outcome struct {
	Page
	Fallback bool
	Tier     int
}

// Search runs the query with up to two progressively relaxed retries.
// Attempts are strictly sequential: each tier's decision depends on the
// previous tier's result count. A provider failure on the primary attempt
// is fatal; failures during fallback tiers count as zero results and the
// best earlier outcome stands.
func Search(ctx context.Context, s Searcher, q Query) (Outcome, error) {
	page, err := s.Discover(ctx, q)
	if err != nil {
		return Outcome{}, fmt.Errorf("discover: %w", err)
	}
	if len(page.Results) >= primaryMinResults {
		return Outcome{Page: page, Fallback: false, Tier: 0}, nil
	}

	best := Outcome{Page: page, Fallback: true, Tier: 0}

	t1, err := s.Discover(ctx, tier1(q))
	if err != nil {
		slog.Warn("fallback tier 1 failed", "error", err)
	} else if len(t1.Results) >= fallbackMinResults {
		return Outcome{Page: t1, Fallback: true, Tier: 1}, nil
	} else if len(t1.Results) > len(best.Results) {
		best = Outcome{Page: t1, Fallback: true, Tier: 1}
	}

	// Terminal attempt; an empty result here is a valid outcome.
	t2, err := s.Discover(ctx, tier2(q))
	if err != nil {
		slog.Warn("fallback tier 2 failed", "error", err)
		return best, nil
	}
	if len(t2.Results) > len(best.Results) {
		best = Outcome{Page: t2, Fallback: true, Tier: 2}
	}
	return best, nil
}

// tier1 keeps genre and decade constraints but drops keywords and quality
// gates, with a low fixed vote floor.
func tier1(q Query) Query {
	return Query{
		Genres:             q.Genres,
		CombineMode:        q.CombineMode,
		SortBy:             "popularity.desc",
		VoteCountGte:       tier1VoteFloor,
		ReleaseDateGte:     q.ReleaseDateGte,
		ReleaseDateLte:     q.ReleaseDateLte,
		VibeDescription:    q.VibeDescription,
		ContextDescription: q.ContextDescription,
	}
}

// tier2 keeps only the highest-precedence genre, lowers the vote floor
// further, and favors acclaimed-over-popular ordering.
func tier2(q Query) Query {
	var genres []int
	if len(q.Genres) > 0 {
		genres = q.Genres[:1]
	}
	return Query{
		Genres:             genres,
		CombineMode:        models.CombineOR,
		SortBy:             "vote_average.desc",
		VoteCountGte:       tier2VoteFloor,
		ReleaseDateGte:     q.ReleaseDateGte,
		ReleaseDateLte:     q.ReleaseDateLte,
		VibeDescription:    q.VibeDescription,
		ContextDescription: q.ContextDescription,
	}
}
