package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/store"
)

// ErrInvalidCollection is returned for an unknown user-data collection.
var ErrInvalidCollection = errors.New(`invalid data type, use "watchlist" or "moodEntries"`)

// LibraryService owns a user's watchlist and mood journal. All writes go
// through this single owner so concurrent mutations from one client
// cannot lose updates at the persistence layer.
type LibraryService struct {
	store *store.Store
	now   func() time.Time
}

// NewLibraryService creates a LibraryService.
func NewLibraryService(st *store.Store) *LibraryService {
	return &LibraryService{store: st, now: time.Now}
}

// Watchlist returns the user's saved movies, optionally filtered by the
// mood they were saved under.
func (s *LibraryService) Watchlist(ctx context.Context, userScope, mood string) ([]models.WatchlistEntry, error) {
	entries, err := s.store.GetWatchlist(ctx, userScope)
	if err != nil {
		return nil, fmt.Errorf("get watchlist: %w", err)
	}
	if mood == "" {
		return entries, nil
	}
	filtered := make([]models.WatchlistEntry, 0, len(entries))
	for _, e := range entries {
		if e.Mood == mood {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// AddToWatchlist saves a movie under the active mood. Saving the same
// movie twice leaves exactly one entry.
func (s *LibraryService) AddToWatchlist(ctx context.Context, userScope string, req models.AddWatchlistRequest) (models.WatchlistEntry, error) {
	entry := models.WatchlistEntry{
		Movie:   req.Movie,
		Mood:    req.Mood,
		AddedAt: s.now().UTC(),
	}
	if err := s.store.AddWatchlistEntry(ctx, userScope, entry); err != nil {
		return models.WatchlistEntry{}, fmt.Errorf("add to watchlist: %w", err)
	}
	return entry, nil
}

// RemoveFromWatchlist deletes a saved movie.
func (s *LibraryService) RemoveFromWatchlist(ctx context.Context, userScope string, movieID int) error {
	if err := s.store.RemoveWatchlistEntry(ctx, userScope, movieID); err != nil {
		return fmt.Errorf("remove from watchlist: %w", err)
	}
	return nil
}

// JournalEntries returns the user's mood journal, optionally filtered by
// mood, newest first.
func (s *LibraryService) JournalEntries(ctx context.Context, userScope, mood string) ([]models.MoodEntry, error) {
	if mood != "" {
		entries, err := s.store.GetMoodEntriesByMood(ctx, userScope, mood)
		if err != nil {
			return nil, fmt.Errorf("get journal entries by mood: %w", err)
		}
		return entries, nil
	}
	entries, err := s.store.GetMoodEntries(ctx, userScope)
	if err != nil {
		return nil, fmt.Errorf("get journal entries: %w", err)
	}
	return entries, nil
}

// AddJournalEntry creates an immutable journal entry.
func (s *LibraryService) AddJournalEntry(ctx context.Context, userScope string, req models.AddJournalEntryRequest) (models.MoodEntry, error) {
	entry := models.MoodEntry{
		ID:    uuid.NewString(),
		Date:  s.now().UTC(),
		Mood:  req.Mood,
		Note:  req.Note,
		Films: req.Films,
	}
	if err := s.store.AddMoodEntry(ctx, userScope, entry); err != nil {
		return models.MoodEntry{}, fmt.Errorf("add journal entry: %w", err)
	}
	return entry, nil
}

// DeleteJournalEntry removes one journal entry.
func (s *LibraryService) DeleteJournalEntry(ctx context.Context, userScope, entryID string) error {
	if err := s.store.RemoveMoodEntry(ctx, userScope, entryID); err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}

// UserData returns a raw collection readout for the user-data surface.
func (s *LibraryService) UserData(ctx context.Context, userScope, collection string) (any, error) {
	switch collection {
	case store.CollectionWatchlist:
		return s.store.GetWatchlist(ctx, userScope)
	case store.CollectionMoodEntries:
		return s.store.GetMoodEntries(ctx, userScope)
	default:
		return nil, ErrInvalidCollection
	}
}
