// Package sqlite is a CounterStore implementation backed by a local SQLite
// file, so play-time accounting survives restarts but stays on the device.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store ...
type Store struct {
	db *sql.DB
}

// Open opens (and initializes) the counter database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_usage (
			day TEXT NOT NULL PRIMARY KEY,
			minutes INTEGER NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close ...
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the minutes accumulated for the given day, zero when unseen.
func (s *Store) Get(ctx context.Context, day string) (int, error) {
	var m int

	if err := s.db.QueryRowContext(ctx, `SELECT minutes FROM daily_usage WHERE day = ?`, day).Scan(&m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return m, nil
}

// Add increments the day's counter and returns the new total.
// Keys of past days are left behind and never cleaned up, they are inert.
func (s *Store) Add(ctx context.Context, day string, minutes int) (int, error) {
	var m int

	if err := s.db.QueryRowContext(ctx, `
		INSERT INTO daily_usage(day, minutes) VALUES(?, ?)
		ON CONFLICT(day) DO UPDATE SET minutes = minutes + excluded.minutes
		RETURNING minutes
	`, day, minutes).Scan(&m); err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return m, nil
}
