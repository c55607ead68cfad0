package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
)

const themeKey = "theme"

// store handles preference-related database operations.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new SettingsStore.
func New(db *sql.DB) SettingsStore {
	return &store{
		db: db,
	}
}

// GetTheme returns the stored theme, light when none was saved.
func (s *store) GetTheme() (handball.Theme, error) {
	value, err := s.get(themeKey)
	if err != nil {
		return "", err
	}
	theme := handball.Theme(value)
	if !theme.Valid() {
		return handball.ThemeLight, nil
	}
	return theme, nil
}

// SetTheme stores the theme preference.
func (s *store) SetTheme(theme handball.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: unknown theme %q", handball.ErrInvalidInput, theme)
	}
	return s.set(themeKey, string(theme))
}

func (s *store) get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// set upserts a preference.
func (s *store) set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmt, err := s.db.Prepare(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;
	`)
	if err != nil {
		log.Error("Failed to prepare statement for preference upsert", "error", err, "key", key)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(key, value); err != nil {
		log.Error("Failed to execute statement for preference upsert", "error", err, "key", key)
		return err
	}
	log.Debug("Stored preference", "key", key, "value", value)
	return nil
}
