package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/taxonomy"
)

func TestBuildQueryGenrePrecedence(t *testing.T) {
	cat := taxonomy.NewCatalog()

	t.Run("explicit user genres always win", func(t *testing.T) {
		sel := models.FilterSelection{
			Mood:         "romantic",
			Genres:       []int{27, 53},
			WatchingWith: "family",
		}
		q := BuildQuery(sel, cat)
		assert.Equal(t, []int{27, 53}, q.Genres)
	})

	t.Run("watch context genres when user picked none and gave no mood", func(t *testing.T) {
		sel := models.FilterSelection{WatchingWith: "friends"}
		q := BuildQuery(sel, cat)
		assert.Equal(t, []int{35, 28, 12, 27}, q.Genres)
	})

	t.Run("mood genres as last resort", func(t *testing.T) {
		sel := models.FilterSelection{Mood: "wistful", WatchingWith: "solo"}
		q := BuildQuery(sel, cat)
		// solo has no genre affinities, so the mood's apply
		assert.Equal(t, []int{18, 10749}, q.Genres)
	})

	t.Run("no genres at all leaves the query unfiltered by genre", func(t *testing.T) {
		q := BuildQuery(models.FilterSelection{}, cat)
		assert.Empty(t, q.Genres)
	})
}

func TestBuildQueryKeywords(t *testing.T) {
	cat := taxonomy.NewCatalog()

	sel := models.FilterSelection{Mood: "romantic", WatchingWith: "date"}
	q := BuildQuery(sel, cat)

	// Genre-derived keywords first (Romance 10749, then Comedy 35), mood
	// keywords appended, deduplicated, truncated to 8 after the union.
	assert.Equal(t, []int{9799, 2010, 818, 9673, 10635, 4565, 9748, 186383}, q.Keywords)
	assert.LessOrEqual(t, len(q.Keywords), 8)
}

func TestBuildQueryVoteCountMerge(t *testing.T) {
	cat := taxonomy.NewCatalog()

	t.Run("stricter profile wins", func(t *testing.T) {
		// friends requires 200, wistful only 100
		q := BuildQuery(models.FilterSelection{Mood: "wistful", WatchingWith: "friends"}, cat)
		assert.Equal(t, 200, q.VoteCountGte)
	})

	t.Run("absent profiles fall back to 50", func(t *testing.T) {
		q := BuildQuery(models.FilterSelection{Mood: "chill", WatchingWith: "date"}, cat)
		// chill has 100, date has none
		assert.Equal(t, 100, q.VoteCountGte)
	})
}

func TestBuildQueryDecades(t *testing.T) {
	cat := taxonomy.NewCatalog()

	t.Run("single decade raises selectivity", func(t *testing.T) {
		base := BuildQuery(models.FilterSelection{Mood: "chill"}, cat)
		q := BuildQuery(models.FilterSelection{Mood: "chill", Decades: []string{"1990s"}}, cat)

		assert.Equal(t, "1990-01-01", q.ReleaseDateGte)
		assert.Equal(t, "1999-12-31", q.ReleaseDateLte)
		assert.GreaterOrEqual(t, q.VoteCountGte, base.VoteCountGte)
		assert.GreaterOrEqual(t, q.VoteCountGte, 100)
		assert.Equal(t, "vote_average.desc", q.SortBy)
	})

	t.Run("multiple decades widen the envelope and lower the floor", func(t *testing.T) {
		base := BuildQuery(models.FilterSelection{Mood: "chaotic"}, cat)
		q := BuildQuery(models.FilterSelection{Mood: "chaotic", Decades: []string{"1980s", "2000s"}}, cat)

		assert.Equal(t, "1980-01-01", q.ReleaseDateGte)
		assert.Equal(t, "2009-12-31", q.ReleaseDateLte)
		assert.Equal(t, base.VoteCountGte-20, q.VoteCountGte)
	})

	t.Run("lowered floor never drops below 20", func(t *testing.T) {
		q := BuildQuery(models.FilterSelection{
			Mood:         "inspired", // 80 before adjustment
			WatchingWith: "solo",
			Decades:      []string{"1930s", "1940s"},
		}, cat)
		assert.Equal(t, 60, q.VoteCountGte)
		assert.GreaterOrEqual(t, q.VoteCountGte, 20)
	})
}

func TestBuildQueryRomanticDateNight(t *testing.T) {
	cat := taxonomy.NewCatalog()

	sel := models.FilterSelection{
		Mood:         "romantic",
		Decades:      []string{"2000s"},
		WatchingWith: "date",
		CombineMode:  models.CombineOR,
	}
	q := BuildQuery(sel, cat)

	assert.Equal(t, []int{10749, 35}, q.Genres)
	assert.Equal(t, "2000-01-01", q.ReleaseDateGte)
	assert.Equal(t, "2009-12-31", q.ReleaseDateLte)
	assert.GreaterOrEqual(t, q.VoteCountGte, 100)
	assert.Equal(t, "vote_average.desc", q.SortBy)
	assert.InDelta(t, 6.5, q.VoteAverageGte, 0.001)
	assert.Equal(t, 90, q.RuntimeGte)
	assert.Equal(t, 130, q.RuntimeLte)
}

func TestBuildQueryIdempotent(t *testing.T) {
	cat := taxonomy.NewCatalog()
	sel := models.FilterSelection{
		Mood:         "reflective",
		Genres:       []int{18, 878},
		Decades:      []string{"1990s", "2010s"},
		WatchingWith: "solo",
		CombineMode:  models.CombineAND,
	}

	first := BuildQuery(sel, cat)
	second := BuildQuery(sel, cat)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Encode(), second.Encode())
}

func TestEncodeCombineModes(t *testing.T) {
	cat := taxonomy.NewCatalog()

	t.Run("OR mode sends one comma-joined genre list", func(t *testing.T) {
		q := BuildQuery(models.FilterSelection{Genres: []int{18, 35}}, cat)
		v := q.Encode()
		assert.Equal(t, []string{"18,35"}, v["with_genres"])
	})

	t.Run("AND mode repeats the genre key", func(t *testing.T) {
		q := BuildQuery(models.FilterSelection{
			Genres:      []int{18, 35},
			CombineMode: models.CombineAND,
		}, cat)
		v := q.Encode()
		assert.Equal(t, []string{"18", "35"}, v["with_genres"])
	})

	t.Run("keywords are pipe-joined in both modes", func(t *testing.T) {
		for _, mode := range []string{models.CombineOR, models.CombineAND} {
			q := BuildQuery(models.FilterSelection{
				Mood:        "chaotic",
				Genres:      []int{28},
				CombineMode: mode,
			}, cat)
			v := q.Encode()
			require.Len(t, v["with_keywords"], 1)
			assert.Contains(t, v["with_keywords"][0], "|")
		}
	})

	t.Run("adult content is always excluded", func(t *testing.T) {
		q := BuildQuery(models.FilterSelection{Mood: "chaotic"}, cat)
		assert.Equal(t, "false", q.Encode().Get("include_adult"))
	})

	t.Run("family context carries certification", func(t *testing.T) {
		q := BuildQuery(models.FilterSelection{WatchingWith: "family"}, cat)
		v := q.Encode()
		assert.Equal(t, "US", v.Get("certification_country"))
		assert.Equal(t, "G|PG", v.Get("certification"))
	})
}

func TestParseDecade(t *testing.T) {
	start, end, err := ParseDecade("1990s")
	require.NoError(t, err)
	assert.Equal(t, 1990, start)
	assert.Equal(t, 1999, end)

	for _, bad := range []string{"", "90s", "1990", "199xs", "1995s"} {
		_, _, err := ParseDecade(bad)
		assert.Error(t, err, "token %q should not parse", bad)
	}
}
