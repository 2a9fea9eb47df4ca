package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"mood-movie-discovery/internal/models"
)

// JournalRepository handles database operations for mood journal entries.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new JournalRepository.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// List returns a user's journal entries, newest first.
func (r *JournalRepository) List(userScope string) ([]models.MoodEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, entry_date, mood, note, films
		FROM mood_entries
		WHERE user_scope = $1
		ORDER BY entry_date DESC
	`, userScope)
	if err != nil {
		return nil, fmt.Errorf("query mood entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListByMood returns a user's journal entries for one mood, newest first.
func (r *JournalRepository) ListByMood(userScope, mood string) ([]models.MoodEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, entry_date, mood, note, films
		FROM mood_entries
		WHERE user_scope = $1 AND mood = $2
		ORDER BY entry_date DESC
	`, userScope, mood)
	if err != nil {
		return nil, fmt.Errorf("query mood entries by mood: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Insert stores a new journal entry. Entries are immutable; there is no
// update path.
func (r *JournalRepository) Insert(userScope string, e models.MoodEntry) error {
	films, err := json.Marshal(e.Films)
	if err != nil {
		return fmt.Errorf("marshal films: %w", err)
	}
	_, err = r.db.Exec(`
		INSERT INTO mood_entries (id, user_scope, entry_date, mood, note, films)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, userScope, e.Date, e.Mood, e.Note, films)
	if err != nil {
		return fmt.Errorf("insert mood entry: %w", err)
	}
	return nil
}

// Delete removes one journal entry.
func (r *JournalRepository) Delete(userScope, entryID string) error {
	_, err := r.db.Exec(`
		DELETE FROM mood_entries WHERE user_scope = $1 AND id = $2
	`, userScope, entryID)
	if err != nil {
		return fmt.Errorf("delete mood entry: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]models.MoodEntry, error) {
	entries := []models.MoodEntry{}
	for rows.Next() {
		var e models.MoodEntry
		var films []byte
		if err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.Note, &films); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		if len(films) > 0 {
			if err := json.Unmarshal(films, &e.Films); err != nil {
				return nil, fmt.Errorf("unmarshal films: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
