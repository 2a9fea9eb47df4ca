package discover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/taxonomy"
)

var scoreNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestScoreClampsToDisplayRange(t *testing.T) {
	cat := taxonomy.NewCatalog()

	t.Run("worst possible input still scores 6", func(t *testing.T) {
		m := models.Movie{VoteAverage: 0, VoteCount: 0, Popularity: 0}
		got := Score(m, models.FilterSelection{}, nil, cat, scoreNow)
		assert.Equal(t, 6, got)
	})

	t.Run("everything matching clamps at 10", func(t *testing.T) {
		m := models.Movie{
			GenreIDs:    []int{35},
			VoteAverage: 8.5,
			Popularity:  600,
			ReleaseDate: "2026-01-15",
		}
		sel := models.FilterSelection{Mood: "chill", Decades: []string{"2020s"}}
		got := Score(m, sel, []int{35}, cat, scoreNow)
		assert.Equal(t, 10, got)
	})

	t.Run("score is always an integer in [6,10]", func(t *testing.T) {
		votes := []float64{0, 3.2, 5, 6.9, 8.5, 10}
		pops := []float64{0, 42, 500, 5000}
		for _, va := range votes {
			for _, pop := range pops {
				m := models.Movie{GenreIDs: []int{18}, VoteAverage: va, Popularity: pop, ReleaseDate: "1994-06-10"}
				got := Score(m, models.FilterSelection{Mood: "wistful"}, []int{18, 10749}, cat, scoreNow)
				assert.GreaterOrEqual(t, got, 6)
				assert.LessOrEqual(t, got, 10)
			}
		}
	})
}

func TestScoreComponents(t *testing.T) {
	cat := taxonomy.NewCatalog()

	t.Run("mood bonus requires a known concrete mood", func(t *testing.T) {
		// Half genre overlap and a 6.0 rating keep both scores clear of
		// the clamp so the bonus is observable.
		m := models.Movie{GenreIDs: []int{18}, VoteAverage: 6, ReleaseDate: "2010-01-01"}
		withMood := Score(m, models.FilterSelection{Mood: "reflective"}, []int{18, 10749}, cat, scoreNow)
		without := Score(m, models.FilterSelection{Mood: "any"}, []int{18, 10749}, cat, scoreNow)
		assert.Equal(t, 2, withMood-without)
	})

	t.Run("recency bonus only applies to recency-favoring moods", func(t *testing.T) {
		m := models.Movie{GenreIDs: []int{35}, VoteAverage: 5, ReleaseDate: "2024-05-01"}
		chill := Score(m, models.FilterSelection{Mood: "chill"}, []int{35, 10751, 16}, cat, scoreNow)
		// wistful is not recency-favoring; both moods otherwise contribute
		// the same flat bonus
		wistful := Score(m, models.FilterSelection{Mood: "wistful"}, []int{35, 10751, 16}, cat, scoreNow)
		assert.Equal(t, 1, chill-wistful)
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		m := models.Movie{GenreIDs: []int{28, 53}, VoteAverage: 6.4, Popularity: 321, ReleaseDate: "2001-09-14"}
		sel := models.FilterSelection{Mood: "chaotic", Decades: []string{"2000s"}}
		first := Score(m, sel, []int{28, 53, 27}, cat, scoreNow)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Score(m, sel, []int{28, 53, 27}, cat, scoreNow))
		}
	})
}

func TestFilterByDecade(t *testing.T) {
	scored := []models.ScoredMovie{
		{Movie: models.Movie{ID: 1, ReleaseDate: "1994-07-06"}},
		{Movie: models.Movie{ID: 2, ReleaseDate: "2004-03-19"}},
		{Movie: models.Movie{ID: 3, ReleaseDate: ""}},
		{Movie: models.Movie{ID: 4, ReleaseDate: "1985-11-22"}},
	}

	t.Run("no decades keeps everything", func(t *testing.T) {
		assert.Len(t, FilterByDecade(scored, nil), 4)
	})

	t.Run("strict membership in any selected decade", func(t *testing.T) {
		got := FilterByDecade(scored, []string{"1990s", "2000s"})
		ids := make([]int, 0, len(got))
		for _, sm := range got {
			ids = append(ids, sm.ID)
		}
		assert.Equal(t, []int{1, 2}, ids)
	})

	t.Run("missing release dates are dropped", func(t *testing.T) {
		got := FilterByDecade(scored, []string{"1980s"})
		assert.Len(t, got, 1)
		assert.Equal(t, 4, got[0].ID)
	})

	t.Run("no survivors yields an empty, non-nil slice", func(t *testing.T) {
		got := FilterByDecade(scored, []string{"1950s"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestReleaseYear(t *testing.T) {
	assert.Equal(t, 1994, ReleaseYear("1994-07-06"))
	assert.Equal(t, 2026, ReleaseYear("2026"))
	assert.Equal(t, 0, ReleaseYear(""))
	assert.Equal(t, 0, ReleaseYear("n/a"))
}
