package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/matches"
	"github.com/mauv0809/handball-stats/internal/processor"
	"github.com/mauv0809/handball-stats/internal/stats"
)

// SelectedPlayer is one entry of CreateMatchRequest.SelectedPlayers.
type SelectedPlayer struct {
	ID      FlexInt `json:"id"`
	Starter bool    `json:"starter"`
}

// CreateMatchRequest is the body of POST /matches.
type CreateMatchRequest struct {
	Opponent        string           `json:"opponent"`
	Date            string           `json:"date"`
	Location        string           `json:"location"`
	SelectedPlayers []SelectedPlayer `json:"selectedPlayers"`
}

// MatchResponse wraps a single match.
type MatchResponse struct {
	Match *handball.Match `json:"match"`
}

// MatchSummaryResponse is the match detail view.
type MatchSummaryResponse struct {
	Match     *handball.Match `json:"match"`
	TeamScore int             `json:"teamScore"`
	Result    string          `json:"result"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

func ListMatchesHandler(store matches.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := store.GetAllMatches()
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

func CreateMatchHandler(store matches.MatchStore, proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMatchRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if req.Date == "" {
			writeError(w, r, fmt.Errorf("%w: opponent, date and location are required", handball.ErrInvalidInput))
			return
		}
		date, err := matches.ParseDate(req.Date)
		if err != nil {
			writeError(w, r, err)
			return
		}
		selected := make([]handball.Selection, 0, len(req.SelectedPlayers))
		for _, sp := range req.SelectedPlayers {
			selected = append(selected, handball.Selection{ID: int64(sp.ID), Starter: sp.Starter})
		}

		match, err := store.CreateMatch(req.Opponent, date, req.Location, selected)
		if err != nil {
			writeError(w, r, err)
			return
		}
		proc.MatchCreated(match, IsDryRunFromContext(r))
		writeJSON(w, http.StatusCreated, MatchResponse{Match: match})
	}
}

func GetMatchHandler(store matches.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		match, err := store.GetMatch(id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MatchResponse{Match: match})
	}
}

func MatchSummaryHandler(store matches.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		match, err := store.GetMatch(id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		teamScore := match.TeamScore()
		writeJSON(w, http.StatusOK, MatchSummaryResponse{
			Match:     match,
			TeamScore: teamScore,
			Result:    stats.MatchResult(teamScore, match.OpponentScore),
		})
	}
}

// UpdateMatchStatsHandler finalizes a match. Each updatedStats entry replaces
// every counter of its match player, so a counter left out of the entry is
// stored as 0. opponentScore is different: when it is left out the stored
// score is kept.
func UpdateMatchStatsHandler(store matches.MatchStore, proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var req handball.StatsUpdate
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if err := store.UpdateMatchStats(id, req.UpdatedStats, req.OpponentScore); err != nil {
			writeError(w, r, err)
			return
		}
		if err := proc.MatchFinalized(id, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to process finalized match", "error", err, "matchID", id)
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Match updated successfully"})
	}
}
