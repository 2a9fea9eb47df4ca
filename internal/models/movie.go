package models

import "time"

// Movie is a single result as received from TMDB discover/list endpoints.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
}

// ScoredMovie is a movie with its computed mood-match score attached.
// Scored movies are rebuilt from scratch on every search, never updated
// in place.
type ScoredMovie struct {
	Movie
	MoodMatch       int    `json:"mood_match"`
	VibeDescription string `json:"vibe_description"`
}

// Combine modes for multi-genre queries.
const (
	CombineOR  = "or"
	CombineAND = "and"
)

// FilterSelection is the discovery request payload built by the UI.
type FilterSelection struct {
	Mood         string   `json:"mood"`
	Genres       []int    `json:"genres"`
	Decades      []string `json:"decades"`
	WatchingWith string   `json:"watching_with"`
	CombineMode  string   `json:"combine_mode"`
}

// AppliedFilters echoes back the filters a discovery response was built from.
type AppliedFilters struct {
	Mood         string   `json:"mood"`
	Genres       []int    `json:"genres"`
	Decades      []string `json:"decades"`
	WatchingWith string   `json:"watching_with"`
	CombineMode  string   `json:"combine_mode"`
}

// DiscoverResponse is the mood-search response shape.
type DiscoverResponse struct {
	Movies                  []ScoredMovie  `json:"movies"`
	TotalResults            int            `json:"total_results"`
	TotalPages              int            `json:"total_pages"`
	VibeDescription         string         `json:"vibe_description"`
	WatchContextDescription string         `json:"watch_context_description,omitempty"`
	HasFallback             bool           `json:"has_fallback"`
	NoDecadeResults         bool           `json:"no_decade_results"`
	AppliedFilters          AppliedFilters `json:"applied_filters"`
}

// WatchlistEntry is a saved movie plus the mood it was saved under.
// Entries are unique per movie id within a user's watchlist.
type WatchlistEntry struct {
	Movie
	AddedAt time.Time `json:"added_at"`
	Mood    string    `json:"mood"`
}

// JournalFilm is a film reference attached to a mood journal entry.
type JournalFilm struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

// MoodEntry is a single mood journal entry. Entries are immutable once
// written; the only mutation is deletion.
type MoodEntry struct {
	ID    string        `json:"id"`
	Date  time.Time     `json:"date"`
	Mood  string        `json:"mood"`
	Note  string        `json:"note,omitempty"`
	Films []JournalFilm `json:"films,omitempty"`
}

// AddJournalEntryRequest is the request body for creating a journal entry.
type AddJournalEntryRequest struct {
	Mood  string        `json:"mood"`
	Note  string        `json:"note"`
	Films []JournalFilm `json:"films"`
}

// AddWatchlistRequest is the request body for saving a movie.
type AddWatchlistRequest struct {
	Movie
	Mood string `json:"mood"`
}

const (
	TMDBImageBaseW500 = "https://image.tmdb.org/t/p/w500"
	TMDBImageBaseW780 = "https://image.tmdb.org/t/p/w780"
)

// AbsolutePosterURL prefixes a TMDB poster path with the image CDN base.
// Empty paths stay empty so the client can show its own placeholder.
func AbsolutePosterURL(path string) string {
	if path == "" {
		return ""
	}
	return TMDBImageBaseW500 + path
}
