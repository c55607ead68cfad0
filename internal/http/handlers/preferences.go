package handlers

import (
	"net/http"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/settings"
)

// ThemeBody is both the request and the response of the theme endpoints.
type ThemeBody struct {
	Theme handball.Theme `json:"theme"`
}

func GetThemeHandler(store settings.SettingsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, err := store.GetTheme()
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ThemeBody{Theme: theme})
	}
}

func SetThemeHandler(store settings.SettingsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ThemeBody
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if err := store.SetTheme(req.Theme); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}
