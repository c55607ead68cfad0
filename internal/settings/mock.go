package settings

import (
	"sync"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// MockStore is an in-memory SettingsStore for testing.
type MockStore struct {
	mu    sync.Mutex
	theme handball.Theme

	SetThemeFunc func(theme handball.Theme) error
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{theme: handball.ThemeLight}
}

func (m *MockStore) GetTheme() (handball.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme, nil
}

func (m *MockStore) SetTheme(theme handball.Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetThemeFunc != nil {
		if err := m.SetThemeFunc(theme); err != nil {
			return err
		}
	}
	m.theme = theme
	return nil
}
