package settings

import "github.com/mauv0809/handball-stats/internal/handball"

// SettingsStore keeps dashboard preferences.
type SettingsStore interface {
	GetTheme() (handball.Theme, error)
	SetTheme(theme handball.Theme) error
}
