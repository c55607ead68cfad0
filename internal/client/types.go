package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/stats"
)

// AddPlayerRequest is the body of POST /players.
type AddPlayerRequest struct {
	Name     string            `json:"name"`
	Position string            `json:"position"`
	Number   int               `json:"number"`
	Category handball.Category `json:"category"`
}

// SelectedPlayer is one roster entry of a new match.
type SelectedPlayer struct {
	ID      int64 `json:"id"`
	Starter bool  `json:"starter"`
}

// CreateMatchRequest is the body of POST /matches. Date is YYYY-MM-DD.
type CreateMatchRequest struct {
	Opponent        string           `json:"opponent"`
	Date            string           `json:"date"`
	Location        string           `json:"location"`
	SelectedPlayers []SelectedPlayer `json:"selectedPlayers"`
}

// MatchSummary is the match detail view.
type MatchSummary struct {
	Match     *handball.Match `json:"match"`
	TeamScore int             `json:"teamScore"`
	Result    string          `json:"result"`
}

// BestTeam is the suggested lineup for a criterion.
type BestTeam struct {
	Criterion stats.Criterion `json:"criterion"`
	Players   []stats.Ranked  `json:"players"`
}

// MassEmailRequest is the body of POST /mass-email.
type MassEmailRequest struct {
	ToEmails string `json:"toEmails"`
	ToName   string `json:"toName"`
	Subject  string `json:"subject"`
	Text     string `json:"text"`
	HTML     string `json:"html"`
}

// MassEmailResult is the server's report of a mass email.
type MassEmailResult struct {
	Success bool   `json:"success"`
	Body    any    `json:"body,omitempty"`
	Error   string `json:"error,omitempty"`
}

type matchEnvelope struct {
	Match *handball.Match `json:"match"`
}

type themeBody struct {
	Theme handball.Theme `json:"theme"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Is lets callers match API errors against the domain sentinels.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return errors.Is(target, handball.ErrInvalidInput)
	case http.StatusNotFound:
		return errors.Is(target, handball.ErrNotFound)
	}
	return false
}
