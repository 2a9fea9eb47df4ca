package discover

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/taxonomy"
)

const (
	// Keyword lists are truncated to keep discover URLs inside TMDB's
	// practical query-length limits.
	maxKeywords = 8

	defaultVoteCount = 50

	// Vote-count adjustments driven by decade selection. A single decade
	// can afford selectivity; multiple decades need breadth.
	singleDecadeVoteFloor   = 100
	multiDecadeVoteStepDown = 20
	multiDecadeVoteFloor    = 20
)

// Query is the fully merged parameter set for one TMDB discover call.
// It is built once per request and never mutated afterwards.
type Query struct {
	Genres               []int
	Keywords             []int
	CombineMode          string
	SortBy               string
	VoteAverageGte       float64
	VoteCountGte         int
	RuntimeGte           int
	RuntimeLte           int
	ReleaseDateGte       string
	ReleaseDateLte       string
	CertificationCountry string
	Certification        string

	// Descriptions travel with the query so the response can echo them.
	VibeDescription    string
	ContextDescription string
}

// defaultMoodProfile applies when no mood (or an unknown mood) is given.
var defaultMoodProfile = taxonomy.MoodProfile{
	SortBy:          "popularity.desc",
	VoteCountGte:    100,
	VibeDescription: "Films that match your current mood",
}

// BuildQuery translates a filter selection into a discover query using the
// taxonomy catalog. Pure: no I/O, no clock, no randomness.
func BuildQuery(sel models.FilterSelection, cat *taxonomy.Catalog) Query {
	mood, moodKnown := cat.Mood(sel.Mood)
	if !moodKnown {
		mood = defaultMoodProfile
	}

	ctx, ctxKnown := cat.WatchContext(sel.WatchingWith)

	// Genre precedence: explicit user choice, then watch-context
	// affinities, then mood affinities.
	var genres []int
	switch {
	case len(sel.Genres) > 0:
		genres = append(genres, sel.Genres...)
	case ctxKnown && len(ctx.Genres) > 0:
		genres = append(genres, ctx.Genres...)
	default:
		genres = append(genres, mood.Genres...)
	}

	// Keywords: genre-derived first, mood keywords appended, deduplicated
	// in insertion order, truncated once after the full union.
	var keywords []int
	seen := make(map[int]bool)
	for _, g := range genres {
		for _, kw := range cat.GenreKeywords[g] {
			if !seen[kw] {
				seen[kw] = true
				keywords = append(keywords, kw)
			}
		}
	}
	for _, kw := range mood.Keywords {
		if !seen[kw] {
			seen[kw] = true
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	q := Query{
		Genres:          genres,
		Keywords:        keywords,
		CombineMode:     combineMode(sel.CombineMode),
		SortBy:          mood.SortBy,
		VoteAverageGte:  mood.VoteAverageGte,
		VibeDescription: mood.VibeDescription,
	}
	if q.SortBy == "" {
		q.SortBy = "popularity.desc"
	}
	if ctxKnown {
		q.ContextDescription = ctx.Description
	}

	// Minimum vote count is the stricter of the two profiles.
	q.VoteCountGte = max(orDefault(mood.VoteCountGte), orDefault(ctx.VoteCountGte))

	// Runtime bounds: mood's bound wins, watch context fills the gaps.
	q.RuntimeGte = firstNonZero(mood.RuntimeGte, ctx.RuntimeGte)
	q.RuntimeLte = firstNonZero(mood.RuntimeLte, ctx.RuntimeLte)

	if ctx.CertificationCountry != "" && ctx.Certification != "" {
		q.CertificationCountry = ctx.CertificationCountry
		q.Certification = ctx.Certification
	}

	applyDecades(&q, sel.Decades)

	return q
}

// applyDecades expands decade tokens into the union envelope date range and
// adjusts selectivity. One decade tightens the vote floor and prefers rated
// films; several decades loosen it to keep enough candidates.
func applyDecades(q *Query, decades []string) {
	minStart, maxEnd := 0, 0
	valid := 0
	for _, d := range decades {
		start, end, err := ParseDecade(d)
		if err != nil {
			continue
		}
		if valid == 0 || start < minStart {
			minStart = start
		}
		if valid == 0 || end > maxEnd {
			maxEnd = end
		}
		valid++
	}
	if valid == 0 {
		return
	}

	q.ReleaseDateGte = fmt.Sprintf("%d-01-01", minStart)
	q.ReleaseDateLte = fmt.Sprintf("%d-12-31", maxEnd)

	if valid == 1 {
		if q.VoteCountGte < singleDecadeVoteFloor {
			q.VoteCountGte = singleDecadeVoteFloor
		}
		q.SortBy = "vote_average.desc"
		return
	}
	q.VoteCountGte = max(q.VoteCountGte-multiDecadeVoteStepDown, multiDecadeVoteFloor)
}

// ParseDecade converts a token like "1990s" into its inclusive year range.
func ParseDecade(token string) (start, end int, err error) {
	s, ok := strings.CutSuffix(token, "s")
	if !ok || len(s) != 4 {
		return 0, 0, fmt.Errorf("invalid decade token %q", token)
	}
	start, err = strconv.Atoi(s)
	if err != nil || start%10 != 0 {
		return 0, 0, fmt.Errorf("invalid decade token %q", token)
	}
	return start, start + 9, nil
}

// Encode renders the query as TMDB discover parameters. In AND mode each
// genre is sent as its own with_genres parameter (TMDB ANDs repeated keys);
// in OR mode genres are one comma-joined list. Keywords are always
// pipe-joined OR — TMDB has no AND semantics for keywords.
func (q Query) Encode() url.Values {
	v := url.Values{}
	v.Set("language", "en-US")
	v.Set("sort_by", q.SortBy)
	v.Set("include_adult", "false")

	if len(q.Genres) > 0 {
		if q.CombineMode == models.CombineAND {
			for _, g := range q.Genres {
				v.Add("with_genres", strconv.Itoa(g))
			}
		} else {
			v.Set("with_genres", joinInts(q.Genres, ","))
		}
	}
	if len(q.Keywords) > 0 {
		v.Set("with_keywords", joinInts(q.Keywords, "|"))
	}
	if q.VoteAverageGte > 0 {
		v.Set("vote_average.gte", strconv.FormatFloat(q.VoteAverageGte, 'f', -1, 64))
	}
	if q.VoteCountGte > 0 {
		v.Set("vote_count.gte", strconv.Itoa(q.VoteCountGte))
	}
	if q.RuntimeGte > 0 {
		v.Set("with_runtime.gte", strconv.Itoa(q.RuntimeGte))
	}
	if q.RuntimeLte > 0 {
		v.Set("with_runtime.lte", strconv.Itoa(q.RuntimeLte))
	}
	if q.ReleaseDateGte != "" {
		v.Set("primary_release_date.gte", q.ReleaseDateGte)
	}
	if q.ReleaseDateLte != "" {
		v.Set("primary_release_date.lte", q.ReleaseDateLte)
	}
	if q.CertificationCountry != "" && q.Certification != "" {
		v.Set("certification_country", q.CertificationCountry)
		v.Set("certification", q.Certification)
	}
	return v
}

func combineMode(mode string) string {
	if mode == models.CombineAND {
		return models.CombineAND
	}
	return models.CombineOR
}

func joinInts(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, sep)
}

func orDefault(voteCount int) int {
	if voteCount == 0 {
		return defaultVoteCount
	}
	return voteCount
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}
