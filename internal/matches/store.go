package matches

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
)

// NewStore creates a new match store.
func NewStore(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", handball.ErrInvalidInput, value)
	}
	return d, nil
}

// CreateMatch creates a new match together with its roster.
func (s *store) CreateMatch(opponent string, date time.Time, location string, selected []handball.Selection) (*handball.Match, error) {
	opponent = strings.TrimSpace(opponent)
	location = strings.TrimSpace(location)
	if opponent == "" || location == "" || date.IsZero() {
		return nil, fmt.Errorf("%w: opponent, date and location are required", handball.ErrInvalidInput)
	}
	seen := make(map[int64]bool, len(selected))
	for _, sel := range selected {
		if seen[sel.ID] {
			return nil, fmt.Errorf("%w: player %d selected twice", handball.ErrInvalidInput, sel.ID)
		}
		seen[sel.ID] = true
	}

	matchID, err := s.insertMatch(opponent, date, location, selected)
	if err != nil {
		return nil, err
	}

	log.Info("Created match", "id", matchID, "opponent", opponent, "players", len(selected))
	return s.GetMatch(matchID)
}

func (s *store) insertMatch(opponent string, date time.Time, location string, selected []handball.Selection) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO matches (opponent, match_date, location, opponent_score) VALUES (?, ?, ?, 0)",
		opponent, date.UTC().Unix(), location,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert match: %w", err)
	}
	matchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read match id: %w", err)
	}

	for _, sel := range selected {
		var exists int
		if err := tx.QueryRow("SELECT COUNT(*) FROM players WHERE id = ?", sel.ID).Scan(&exists); err != nil {
			return 0, fmt.Errorf("failed to look up player %d: %w", sel.ID, err)
		}
		if exists == 0 {
			return 0, fmt.Errorf("%w: unknown player %d", handball.ErrInvalidInput, sel.ID)
		}
		if _, err := tx.Exec(
			"INSERT INTO match_players (match_id, player_id, starter) VALUES (?, ?, ?)",
			matchID, sel.ID, sel.Starter,
		); err != nil {
			return 0, fmt.Errorf("failed to insert match player %d: %w", sel.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit match: %w", err)
	}
	return matchID, nil
}

// GetMatch retrieves a match by id.
func (s *store) GetMatch(id int64) (*handball.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m handball.Match
	var matchDate int64
	err := s.db.QueryRow(
		"SELECT id, opponent, match_date, location, opponent_score FROM matches WHERE id = ?", id,
	).Scan(&m.ID, &m.Opponent, &matchDate, &m.Location, &m.OpponentScore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("match %d: %w", id, handball.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	m.Date = time.Unix(matchDate, 0).UTC()

	rows, err := s.db.Query(`
		SELECT `+matchPlayerColumns+`,
			p.id, p.name, p.position, p.number, p.category
		FROM match_players mp
		JOIN players p ON p.id = mp.player_id
		WHERE mp.match_id = ?
		ORDER BY mp.id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match players: %w", err)
	}
	defer rows.Close()

	m.MatchPlayers = []handball.MatchPlayer{}
	for rows.Next() {
		var mp handball.MatchPlayer
		var p handball.Player
		var category string
		dest := append(matchPlayerDest(&mp), &p.ID, &p.Name, &p.Position, &p.Number, &category)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan match player: %w", err)
		}
		p.Category = handball.Category(category)
		mp.Player = &p
		m.MatchPlayers = append(m.MatchPlayers, mp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMatchStats overwrites the listed counters in a single transaction.
// Every counter of a listed match player is written, zero values included.
// A nil opponentScore leaves the stored score untouched.
func (s *store) UpdateMatchStats(id int64, updates []handball.StatUpdate, opponentScore *int) error {
	if opponentScore != nil && *opponentScore < 0 {
		return fmt.Errorf("%w: opponentScore cannot be negative", handball.ErrInvalidInput)
	}
	for _, u := range updates {
		if err := u.Counters.Validate(); err != nil {
			return fmt.Errorf("match player %d: %w", u.MatchPlayerID, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow("SELECT COUNT(*) FROM matches WHERE id = ?", id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to look up match: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("match %d: %w", id, handball.ErrNotFound)
	}

	for _, u := range updates {
		c := u.Counters
		res, err := tx.Exec(`
			UPDATE match_players SET
				goals = ?, assists = ?, saves = ?, turnovers = ?, shots_on_goal = ?,
				shots_off_target = ?, recoveries = ?, fouls_committed = ?, fouls_received = ?,
				yellow_cards = ?, red_cards = ?, play_time = ?
			WHERE id = ? AND match_id = ?`,
			c.Goals, c.Assists, c.Saves, c.Turnovers, c.ShotsOnGoal,
			c.ShotsOffTarget, c.Recoveries, c.FoulsCommitted, c.FoulsReceived,
			c.YellowCards, c.RedCards, c.PlayTime,
			u.MatchPlayerID, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update match player %d: %w", u.MatchPlayerID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update match player %d: %w", u.MatchPlayerID, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: match player %d does not belong to match %d", handball.ErrInvalidInput, u.MatchPlayerID, id)
		}
	}

	if opponentScore != nil {
		if _, err := tx.Exec("UPDATE matches SET opponent_score = ? WHERE id = ?", *opponentScore, id); err != nil {
			return fmt.Errorf("failed to update opponent score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stats: %w", err)
	}
	log.Info("Updated match stats", "id", id, "players", len(updates))
	return nil
}

// GetAllMatches returns every match ordered by date, newest first.
func (s *store) GetAllMatches() ([]handball.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, opponent, match_date, location, opponent_score FROM matches ORDER BY match_date DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []handball.Match{}
	for rows.Next() {
		var m handball.Match
		var matchDate int64
		if err := rows.Scan(&m.ID, &m.Opponent, &matchDate, &m.Location, &m.OpponentScore); err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		m.Date = time.Unix(matchDate, 0).UTC()
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// GetAllMatchPlayers returns every MatchPlayer row.
func (s *store) GetAllMatchPlayers() ([]handball.MatchPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + matchPlayerColumns + " FROM match_players mp ORDER BY mp.id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query match players: %w", err)
	}
	defer rows.Close()

	out := []handball.MatchPlayer{}
	for rows.Next() {
		var mp handball.MatchPlayer
		if err := rows.Scan(matchPlayerDest(&mp)...); err != nil {
			return nil, fmt.Errorf("failed to scan match player: %w", err)
		}
		out = append(out, mp)
	}
	return out, rows.Err()
}

func matchPlayerDest(mp *handball.MatchPlayer) []any {
	c := &mp.Counters
	return []any{
		&mp.ID, &mp.MatchID, &mp.PlayerID, &mp.Starter,
		&c.Goals, &c.Assists, &c.Saves, &c.Turnovers, &c.ShotsOnGoal, &c.ShotsOffTarget,
		&c.Recoveries, &c.FoulsCommitted, &c.FoulsReceived, &c.YellowCards, &c.RedCards, &c.PlayTime,
	}
}
