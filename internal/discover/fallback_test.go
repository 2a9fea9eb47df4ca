package discover

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/taxonomy"
)

// stubSearcher replays canned responses and records every query it saw.
type stubSearcher struct {
	pages   []Page
	errs    []error
	queries []Query
}

func (s *stubSearcher) Discover(_ context.Context, q Query) (Page, error) {
	i := len(s.queries)
	s.queries = append(s.queries, q)
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var page Page
	if i < len(s.pages) {
		page = s.pages[i]
	}
	return page, err
}

func moviePage(n int) Page {
	p := Page{TotalResults: n, TotalPages: 1}
	for i := 0; i < n; i++ {
		p.Results = append(p.Results, models.Movie{ID: i + 1, Title: fmt.Sprintf("Movie %d", i+1)})
	}
	return p
}

func testQuery(t *testing.T) Query {
	t.Helper()
	return BuildQuery(models.FilterSelection{
		Mood:         "romantic",
		Decades:      []string{"2000s"},
		WatchingWith: "date",
	}, taxonomy.NewCatalog())
}

func TestSearchPrimarySufficient(t *testing.T) {
	s := &stubSearcher{pages: []Page{moviePage(5)}}

	out, err := Search(context.Background(), s, testQuery(t))
	require.NoError(t, err)

	assert.False(t, out.Fallback)
	assert.Equal(t, 0, out.Tier)
	assert.Len(t, out.Results, 5)
	assert.Len(t, s.queries, 1, "no fallback calls expected")
}

func TestSearchTier1Accepted(t *testing.T) {
	s := &stubSearcher{pages: []Page{moviePage(2), moviePage(4)}}

	out, err := Search(context.Background(), s, testQuery(t))
	require.NoError(t, err)

	assert.True(t, out.Fallback)
	assert.Equal(t, 1, out.Tier)
	assert.Len(t, out.Results, 4, "tier-1 list replaces the thin primary list")
	assert.Len(t, s.queries, 2)
}

func TestSearchTier2Terminal(t *testing.T) {
	s := &stubSearcher{pages: []Page{moviePage(1), moviePage(2), moviePage(2)}}

	out, err := Search(context.Background(), s, testQuery(t))
	require.NoError(t, err)

	assert.True(t, out.Fallback)
	assert.Len(t, s.queries, 3)
	assert.Len(t, out.Results, 2)
}

func TestSearchEmptyAfterAllTiersIsNotAnError(t *testing.T) {
	s := &stubSearcher{pages: []Page{moviePage(0), moviePage(0), moviePage(0)}}

	out, err := Search(context.Background(), s, testQuery(t))
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Empty(t, out.Results)
}

func TestSearchPrimaryFailureIsFatal(t *testing.T) {
	s := &stubSearcher{errs: []error{errors.New("upstream 500")}}

	_, err := Search(context.Background(), s, testQuery(t))
	require.Error(t, err)
	assert.Len(t, s.queries, 1, "fallback must not run after a fatal primary failure")
}

func TestSearchFallbackFailuresAreAbsorbed(t *testing.T) {
	s := &stubSearcher{
		pages: []Page{moviePage(2), {}, {}},
		errs:  []error{nil, errors.New("tier 1 down"), errors.New("tier 2 down")},
	}

	out, err := Search(context.Background(), s, testQuery(t))
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Len(t, out.Results, 2, "best earlier tier stands")
}

// Each tier must be a strict relaxation: constraints are only dropped or
// loosened, never added back.
func TestFallbackTiersAreMonotonic(t *testing.T) {
	q := testQuery(t)
	require.NotEmpty(t, q.Keywords)
	require.Greater(t, q.VoteAverageGte, 0.0)

	s := &stubSearcher{pages: []Page{moviePage(0), moviePage(0), moviePage(0)}}
	_, err := Search(context.Background(), s, q)
	require.NoError(t, err)
	require.Len(t, s.queries, 3)

	t1, t2 := s.queries[1], s.queries[2]

	// Tier 1: keeps genres and decade range, drops everything else.
	assert.Equal(t, q.Genres, t1.Genres)
	assert.Equal(t, q.ReleaseDateGte, t1.ReleaseDateGte)
	assert.Equal(t, q.ReleaseDateLte, t1.ReleaseDateLte)
	assert.Empty(t, t1.Keywords)
	assert.Zero(t, t1.VoteAverageGte)
	assert.Zero(t, t1.RuntimeGte)
	assert.Zero(t, t1.RuntimeLte)
	assert.Empty(t, t1.Certification)
	assert.LessOrEqual(t, t1.VoteCountGte, q.VoteCountGte)

	// Tier 2: down to the single highest-precedence genre, lower floor.
	assert.Equal(t, q.Genres[:1], t2.Genres)
	assert.Empty(t, t2.Keywords)
	assert.LessOrEqual(t, t2.VoteCountGte, t1.VoteCountGte)
	assert.Equal(t, "vote_average.desc", t2.SortBy)
}
