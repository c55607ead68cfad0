package matches

import (
	"database/sql"
	"sync"
)

// DateLayout is the calendar date format accepted on input.
const DateLayout = "2006-01-02"

// store handles database operations for matches.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

const matchPlayerColumns = `
	mp.id, mp.match_id, mp.player_id, mp.starter,
	mp.goals, mp.assists, mp.saves, mp.turnovers, mp.shots_on_goal, mp.shots_off_target,
	mp.recoveries, mp.fouls_committed, mp.fouls_received, mp.yellow_cards, mp.red_cards, mp.play_time`
