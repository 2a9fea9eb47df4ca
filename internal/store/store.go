package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/repository"
)

// Collection names understood by the user-data surface.
const (
	CollectionWatchlist   = "watchlist"
	CollectionMoodEntries = "moodEntries"
)

const mirrorTTL = 24 * time.Hour

// Store is the two-tier persistence adapter for per-user collections.
// PostgreSQL is the authoritative durable store; Redis carries an
// opportunistic whole-collection JSON mirror per user. Reads prefer the
// mirror and seed it from PostgreSQL on a miss; writes land in PostgreSQL
// first and refresh the mirror best-effort. A missing or failing mirror
// is never fatal.
type Store struct {
	watchlist *repository.WatchlistRepository
	journal   *repository.JournalRepository
	rdb       *redis.Client
}

// New creates a Store. rdb may be nil; the store then runs on PostgreSQL
// alone.
func New(watchlist *repository.WatchlistRepository, journal *repository.JournalRepository, rdb *redis.Client) *Store {
	return &Store{watchlist: watchlist, journal: journal, rdb: rdb}
}

func mirrorKey(userScope, collection string) string {
	return fmt.Sprintf("userdata:%s:%s", userScope, collection)
}

// ---- Watchlist ----

// GetWatchlist returns the user's watchlist, mirror-first.
func (s *Store) GetWatchlist(ctx context.Context, userScope string) ([]models.WatchlistEntry, error) {
	key := mirrorKey(userScope, CollectionWatchlist)
	if cached, ok := s.readMirror(ctx, key); ok {
		var entries []models.WatchlistEntry
		if json.Unmarshal(cached, &entries) == nil {
			return entries, nil
		}
	}

	entries, err := s.watchlist.List(userScope)
	if err != nil {
		return nil, err
	}
	s.writeMirror(ctx, key, entries)
	return entries, nil
}

// AddWatchlistEntry saves a movie to the watchlist. Duplicate adds are
// no-ops; the original entry wins.
func (s *Store) AddWatchlistEntry(ctx context.Context, userScope string, e models.WatchlistEntry) error {
	if err := s.watchlist.Upsert(userScope, e); err != nil {
		return err
	}
	s.refreshWatchlistMirror(ctx, userScope)
	return nil
}

// RemoveWatchlistEntry deletes one movie from the watchlist.
func (s *Store) RemoveWatchlistEntry(ctx context.Context, userScope string, movieID int) error {
	if err := s.watchlist.Delete(userScope, movieID); err != nil {
		return err
	}
	s.refreshWatchlistMirror(ctx, userScope)
	return nil
}

func (s *Store) refreshWatchlistMirror(ctx context.Context, userScope string) {
	entries, err := s.watchlist.List(userScope)
	if err != nil {
		s.dropMirror(ctx, mirrorKey(userScope, CollectionWatchlist))
		return
	}
	s.writeMirror(ctx, mirrorKey(userScope, CollectionWatchlist), entries)
}

// ---- Mood journal ----

// GetMoodEntries returns the user's journal, mirror-first.
func (s *Store) GetMoodEntries(ctx context.Context, userScope string) ([]models.MoodEntry, error) {
	key := mirrorKey(userScope, CollectionMoodEntries)
	if cached, ok := s.readMirror(ctx, key); ok {
		var entries []models.MoodEntry
		if json.Unmarshal(cached, &entries) == nil {
			return entries, nil
		}
	}

	entries, err := s.journal.List(userScope)
	if err != nil {
		return nil, err
	}
	s.writeMirror(ctx, key, entries)
	return entries, nil
}

// GetMoodEntriesByMood returns journal entries for one mood straight from
// the authoritative store.
func (s *Store) GetMoodEntriesByMood(ctx context.Context, userScope, mood string) ([]models.MoodEntry, error) {
	return s.journal.ListByMood(userScope, mood)
}

// AddMoodEntry stores a new journal entry.
func (s *Store) AddMoodEntry(ctx context.Context, userScope string, e models.MoodEntry) error {
	if err := s.journal.Insert(userScope, e); err != nil {
		return err
	}
	s.refreshJournalMirror(ctx, userScope)
	return nil
}

// RemoveMoodEntry deletes one journal entry.
func (s *Store) RemoveMoodEntry(ctx context.Context, userScope, entryID string) error {
	if err := s.journal.Delete(userScope, entryID); err != nil {
		return err
	}
	s.refreshJournalMirror(ctx, userScope)
	return nil
}

func (s *Store) refreshJournalMirror(ctx context.Context, userScope string) {
	entries, err := s.journal.List(userScope)
	if err != nil {
		s.dropMirror(ctx, mirrorKey(userScope, CollectionMoodEntries))
		return
	}
	s.writeMirror(ctx, mirrorKey(userScope, CollectionMoodEntries), entries)
}

// ---- Mirror helpers ----

func (s *Store) readMirror(ctx context.Context, key string) ([]byte, bool) {
	if s.rdb == nil {
		return nil, false
	}
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *Store) writeMirror(ctx context.Context, key string, v any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, mirrorTTL).Err(); err != nil {
		slog.Warn("failed to write user-data mirror", "key", key, "error", err)
	}
}

func (s *Store) dropMirror(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("failed to drop user-data mirror", "key", key, "error", err)
	}
}
