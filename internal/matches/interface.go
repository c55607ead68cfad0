package matches

import (
	"time"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// MatchStore persists matches and the per-player counters recorded in them.
type MatchStore interface {
	// CreateMatch inserts the match and one zeroed MatchPlayer per selection.
	CreateMatch(opponent string, date time.Time, location string, selected []handball.Selection) (*handball.Match, error)

	// GetMatch returns the match with its MatchPlayers joined to their players.
	GetMatch(id int64) (*handball.Match, error)

	// UpdateMatchStats overwrites counters and, when opponentScore is set, the
	// opponent score. Everything is applied or nothing is.
	UpdateMatchStats(id int64, updates []handball.StatUpdate, opponentScore *int) error

	// GetAllMatches returns every match, newest first, without players.
	GetAllMatches() ([]handball.Match, error)

	// GetAllMatchPlayers returns every MatchPlayer row.
	GetAllMatchPlayers() ([]handball.MatchPlayer, error)
}
