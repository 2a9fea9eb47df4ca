package discover

import (
	"math"
	"strconv"
	"time"

	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/taxonomy"
)

// Displayed mood-match scores never leave this range; the product refuses
// to show a match below 60% or above 100%.
const (
	minMoodMatch = 6
	maxMoodMatch = 10
)

// Moods whose audience tends to want something recent.
var recencyMoods = map[string]bool{
	"chaotic": true,
	"hopeful": true,
	"chill":   true,
}

// Score computes the mood-match score for one result. Deterministic for a
// given clock reading; only the recency term depends on now.
func Score(m models.Movie, sel models.FilterSelection, resolvedGenres []int, cat *taxonomy.Catalog, now time.Time) int {
	score := 5.0

	// Genre overlap, up to 5 points.
	overlap := 0
	for _, id := range m.GenreIDs {
		for _, want := range resolvedGenres {
			if id == want {
				overlap++
				break
			}
		}
	}
	ratio := float64(overlap) / math.Max(1, float64(len(resolvedGenres)))
	score += math.Min(5, ratio*5)

	// Flat bonus for searching with a concrete mood.
	if _, ok := cat.Mood(sel.Mood); ok && sel.Mood != "" && sel.Mood != "any" {
		score += 2
	}

	// Popularity is deliberately de-emphasized.
	score += math.Min(1, m.Popularity/500) * 0.5

	// Rating term; raw value can go negative for poorly rated films, the
	// final clamp absorbs it.
	score += math.Min(1.5, (m.VoteAverage-5)/2)

	year := ReleaseYear(m.ReleaseDate)

	if recencyMoods[sel.Mood] && year > 0 && now.Year()-year <= 5 {
		score++
	}

	if year > 0 {
		for _, d := range sel.Decades {
			start, end, err := ParseDecade(d)
			if err == nil && year >= start && year <= end {
				score += 1.5
				break
			}
		}
	}

	return int(math.Round(math.Min(maxMoodMatch, math.Max(minMoodMatch, score))))
}

// ReleaseYear extracts the year from a TMDB release date, or 0 when the
// date is absent or unparseable.
func ReleaseYear(releaseDate string) int {
	if t, err := time.Parse("2006-01-02", releaseDate); err == nil {
		return t.Year()
	}
	if len(releaseDate) >= 4 {
		if y, err := strconv.Atoi(releaseDate[:4]); err == nil {
			return y
		}
	}
	return 0
}

// FilterByDecade enforces strict decade membership after scoring. TMDB's
// date range is a single envelope, so results between two non-adjacent
// selected decades slip through and must be dropped here, along with
// results that carry no release date at all.
func FilterByDecade(scored []models.ScoredMovie, decades []string) []models.ScoredMovie {
	if len(decades) == 0 {
		return scored
	}

	kept := make([]models.ScoredMovie, 0, len(scored))
	for _, sm := range scored {
		year := ReleaseYear(sm.ReleaseDate)
		if year == 0 {
			continue
		}
		for _, d := range decades {
			start, end, err := ParseDecade(d)
			if err == nil && year >= start && year <= end {
				kept = append(kept, sm)
				break
			}
		}
	}
	return kept
}
