package handlers

import (
	"fmt"
	"net/http"

	"github.com/mauv0809/handball-stats/internal/club"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/matches"
	"github.com/mauv0809/handball-stats/internal/stats"
)

// BestTeamResponse is the body of GET /stats/best-team.
type BestTeamResponse struct {
	Criterion stats.Criterion `json:"criterion"`
	Players   []stats.Ranked  `json:"players"`
}

func loadRollups(clubs club.ClubStore, store matches.MatchStore) ([]stats.Rollup, error) {
	players, err := clubs.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	matchPlayers, err := store.GetAllMatchPlayers()
	if err != nil {
		return nil, err
	}
	return stats.Rollups(players, matchPlayers), nil
}

func PlayerStatsHandler(clubs club.ClubStore, store matches.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rollups, err := loadRollups(clubs, store)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if key := r.URL.Query().Get("sort"); key != "" {
			rollups = stats.SortRollups(rollups, key)
		}
		writeJSON(w, http.StatusOK, rollups)
	}
}

func MatchHistoryHandler(store matches.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := store.GetAllMatches()
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, stats.MatchHistory(all))
	}
}

func SummaryHandler(clubs club.ClubStore, store matches.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := store.GetAllMatches()
		if err != nil {
			writeError(w, r, err)
			return
		}
		rollups, err := loadRollups(clubs, store)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, stats.Summarize(all, rollups))
	}
}

func BestTeamHandler(clubs club.ClubStore, store matches.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rollups, err := loadRollups(clubs, store)
		if err != nil {
			writeError(w, r, err)
			return
		}
		criterion := stats.ParseCriterion(r.URL.Query().Get("criterion"))
		writeJSON(w, http.StatusOK, BestTeamResponse{
			Criterion: criterion,
			Players:   stats.BestTeam(rollups, criterion),
		})
	}
}

func CompareHandler(clubs club.ClubStore, store matches.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id1, err := queryID(r, "player1")
		if err != nil {
			writeError(w, r, err)
			return
		}
		id2, err := queryID(r, "player2")
		if err != nil {
			writeError(w, r, err)
			return
		}
		players, err := clubs.GetPlayers([]int64{id1, id2})
		if err != nil {
			writeError(w, r, err)
			return
		}
		matchPlayers, err := store.GetAllMatchPlayers()
		if err != nil {
			writeError(w, r, err)
			return
		}
		rollups := stats.Rollups(players, matchPlayers)
		p1, ok1 := findRollup(rollups, id1)
		p2, ok2 := findRollup(rollups, id2)
		switch {
		case !ok1:
			writeError(w, r, fmt.Errorf("player %d: %w", id1, handball.ErrNotFound))
			return
		case !ok2:
			writeError(w, r, fmt.Errorf("player %d: %w", id2, handball.ErrNotFound))
			return
		}
		writeJSON(w, http.StatusOK, stats.Compare(p1, p2))
	}
}

func findRollup(rollups []stats.Rollup, id int64) (stats.Rollup, bool) {
	for _, r := range rollups {
		if r.ID == id {
			return r, true
		}
	}
	return stats.Rollup{}, false
}
