package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"mood-movie-discovery/internal/models"
)

// WatchlistRepository handles database operations for watchlists.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// List returns a user's full watchlist, newest first.
func (r *WatchlistRepository) List(userScope string) ([]models.WatchlistEntry, error) {
	rows, err := r.db.Query(`
		SELECT movie_id, title, overview, release_date, vote_average, vote_count,
			popularity, poster_path, backdrop_path, genre_ids, mood, added_at
		FROM watchlist_entries
		WHERE user_scope = $1
		ORDER BY added_at DESC
	`, userScope)
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer rows.Close()

	entries := []models.WatchlistEntry{}
	for rows.Next() {
		var e models.WatchlistEntry
		var genreIDs pq.Int64Array
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Overview, &e.ReleaseDate, &e.VoteAverage,
			&e.VoteCount, &e.Popularity, &e.PosterPath, &e.BackdropPath,
			&genreIDs, &e.Mood, &e.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("scan watchlist entry: %w", err)
		}
		e.GenreIDs = toInts(genreIDs)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Upsert stores a watchlist entry. Adding a movie that is already saved is
// a no-op: the original entry, including its added_at and mood, wins.
func (r *WatchlistRepository) Upsert(userScope string, e models.WatchlistEntry) error {
	_, err := r.db.Exec(`
		INSERT INTO watchlist_entries (user_scope, movie_id, title, overview,
			release_date, vote_average, vote_count, popularity, poster_path,
			backdrop_path, genre_ids, mood, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_scope, movie_id) DO NOTHING
	`, userScope, e.ID, e.Title, e.Overview, e.ReleaseDate, e.VoteAverage,
		e.VoteCount, e.Popularity, e.PosterPath, e.BackdropPath,
		pq.Array(toInt64s(e.GenreIDs)), e.Mood, e.AddedAt)
	if err != nil {
		return fmt.Errorf("upsert watchlist entry: %w", err)
	}
	return nil
}

// Delete removes one movie from a user's watchlist.
func (r *WatchlistRepository) Delete(userScope string, movieID int) error {
	_, err := r.db.Exec(`
		DELETE FROM watchlist_entries WHERE user_scope = $1 AND movie_id = $2
	`, userScope, movieID)
	if err != nil {
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	return nil
}

func toInts(a pq.Int64Array) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = int(v)
	}
	return out
}

func toInt64s(a []int) []int64 {
	out := make([]int64, len(a))
	for i, v := range a {
		out[i] = int64(v)
	}
	return out
}
