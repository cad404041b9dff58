// Package prefs persists UI preferences in a small SQLite key-value table.
package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Theme is the UI color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const themeKey = "theme"

// Store is a SQLite-backed preference store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the preference database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS ui_settings (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init prefs schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Theme returns the stored theme. Missing or invalid values default to dark.
func (s *Store) Theme(ctx context.Context) Theme {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM ui_settings WHERE key = ?`, themeKey).Scan(&value)
	if err != nil {
		return ThemeDark
	}

	switch Theme(value) {
	case ThemeDark, ThemeLight:
		return Theme(value)
	}
	return ThemeDark
}

// SetTheme stores the theme, written on every change.
func (s *Store) SetTheme(ctx context.Context, theme Theme) error {
	if theme != ThemeDark && theme != ThemeLight {
		theme = ThemeDark
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ui_settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		themeKey, string(theme), time.Now())
	if err != nil {
		return fmt.Errorf("store theme: %w", err)
	}
	return nil
}

// ToggleTheme flips dark/light and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) (Theme, error) {
	next := ThemeLight
	if s.Theme(ctx) == ThemeLight {
		next = ThemeDark
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
