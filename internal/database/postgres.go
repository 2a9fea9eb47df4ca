package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"mood-movie-discovery/internal/config"
)

// NewPostgres creates a new PostgreSQL connection and runs migrations.
func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS watchlist_entries (
			user_scope VARCHAR(255) NOT NULL,
			movie_id INTEGER NOT NULL,
			title VARCHAR(500) NOT NULL,
			overview TEXT DEFAULT '',
			release_date VARCHAR(10) DEFAULT '',
			vote_average DOUBLE PRECISION DEFAULT 0,
			vote_count INTEGER DEFAULT 0,
			popularity DOUBLE PRECISION DEFAULT 0,
			poster_path VARCHAR(500) DEFAULT '',
			backdrop_path VARCHAR(500) DEFAULT '',
			genre_ids INTEGER[] DEFAULT '{}',
			mood VARCHAR(50) DEFAULT '',
			added_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_scope, movie_id)
		)`,
		`CREATE TABLE IF NOT EXISTS mood_entries (
			id UUID PRIMARY KEY,
			user_scope VARCHAR(255) NOT NULL,
			entry_date TIMESTAMP NOT NULL DEFAULT NOW(),
			mood VARCHAR(50) NOT NULL,
			note TEXT DEFAULT '',
			films JSONB DEFAULT '[]'
		)`,
		// Indexes for common query patterns
		`CREATE INDEX IF NOT EXISTS idx_watchlist_user ON watchlist_entries(user_scope)`,
		`CREATE INDEX IF NOT EXISTS idx_mood_entries_user ON mood_entries(user_scope, entry_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_mood_entries_mood ON mood_entries(user_scope, mood)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
