package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/club"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/metrics"
)

// AddPlayerRequest is the body of POST /players.
type AddPlayerRequest struct {
	Name     string            `json:"name"`
	Position string            `json:"position"`
	Number   FlexInt           `json:"number"`
	Category handball.Category `json:"category"`
}

func ListPlayersHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.GetAllPlayers()
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func AddPlayerHandler(store club.ClubStore, metrics metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddPlayerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		player, err := store.AddPlayer(req.Name, req.Position, int(req.Number), req.Category)
		if err != nil {
			writeError(w, r, err)
			return
		}
		metrics.IncPlayersCreated()
		log.Debug("Player created via API", "id", player.ID)
		writeJSON(w, http.StatusCreated, player)
	}
}

func GetPlayerHandler(store club.ClubStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		player, err := store.GetPlayer(id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}
