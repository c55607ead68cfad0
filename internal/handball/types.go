package handball

import "time"

// Category is the roster a player is registered in.
type Category string

const (
	CategoryMale   Category = "MASCULINO"
	CategoryFemale Category = "FEMENINO"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryMale || c == CategoryFemale
}

// Positions used by the lineup selection. Position is free text on a player,
// these are simply the labels the reporting layer knows about.
const (
	PositionGoalkeeper = "Portero"
	PositionBack       = "Lateral"
	PositionCentre     = "Central"
	PositionPivot      = "Pivote"
	PositionWing       = "Extremo"
)

// Player is a registered team member.
type Player struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Position string   `json:"position"`
	Number   int      `json:"number"`
	Category Category `json:"category"`
}

// Match is one recorded game.
type Match struct {
	ID            int64         `json:"id"`
	Opponent      string        `json:"opponent"`
	Date          time.Time     `json:"date"`
	Location      string        `json:"location"`
	OpponentScore int           `json:"opponentScore"`
	MatchPlayers  []MatchPlayer `json:"matchPlayers,omitempty"`
}

// TeamScore is the sum of goals scored by the match's players.
func (m *Match) TeamScore() int {
	total := 0
	for _, mp := range m.MatchPlayers {
		total += mp.Goals
	}
	return total
}

// MatchPlayer ties one player to one match and carries the per-match counters.
type MatchPlayer struct {
	ID       int64 `json:"id"`
	MatchID  int64 `json:"matchId"`
	PlayerID int64 `json:"playerId"`
	Starter  bool  `json:"starter"`
	Counters
	Player *Player `json:"player,omitempty"`
}

// Selection is a player picked for a new match.
type Selection struct {
	ID      int64 `json:"id"`
	Starter bool  `json:"starter"`
}

// StatUpdate overwrites the counters of one match player.
type StatUpdate struct {
	MatchPlayerID int64 `json:"matchPlayerId"`
	Counters
}

// StatsUpdate is the batch sent when a match is finalized.
type StatsUpdate struct {
	UpdatedStats  []StatUpdate `json:"updatedStats"`
	OpponentScore *int         `json:"opponentScore,omitempty"`
}

// Theme is the dashboard colour preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
