package club

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

// AddPlayer registers a player. Every field is required; duplicates are allowed.
func (s *store) AddPlayer(name, position string, number int, category handball.Category) (*handball.Player, error) {
	name = strings.TrimSpace(name)
	position = strings.TrimSpace(position)
	if name == "" || position == "" || number == 0 || category == "" {
		return nil, fmt.Errorf("%w: name, position, number and category are required", handball.ErrInvalidInput)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", handball.ErrInvalidInput, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"INSERT INTO players (name, position, number, category) VALUES (?, ?, ?, ?)",
		name, position, number, string(category),
	)
	if err != nil {
		log.Error("Failed to insert player", "error", err, "name", name)
		return nil, fmt.Errorf("failed to insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read player id: %w", err)
	}

	log.Info("Added player", "id", id, "name", name, "number", number)
	return &handball.Player{
		ID:       id,
		Name:     name,
		Position: position,
		Number:   number,
		Category: category,
	}, nil
}

// GetAllPlayers returns every player ordered by id.
func (s *store) GetAllPlayers() ([]handball.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, position, number, category FROM players ORDER BY id ASC")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	players := []handball.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// GetPlayer returns a single player by id.
func (s *store) GetPlayer(id int64) (*handball.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT id, name, position, number, category FROM players WHERE id = ?", id)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %d: %w", id, handball.ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return p, nil
}

// GetPlayers returns the players matching ids, in id order. Unknown ids are skipped.
func (s *store) GetPlayers(ids []int64) ([]handball.Player, error) {
	if len(ids) == 0 {
		return []handball.Player{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := fmt.Sprintf(
		"SELECT id, name, position, number, category FROM players WHERE id IN (?%s) ORDER BY id ASC",
		strings.Repeat(",?", len(ids)-1),
	)
	rows, err := s.db.Query(query, ToAnySlice(ids)...)
	if err != nil {
		log.Error("Failed to query players", "error", err, "ids", ids)
		return nil, err
	}
	defer rows.Close()

	players := []handball.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*handball.Player, error) {
	var p handball.Player
	var category string
	if err := scanner.Scan(&p.ID, &p.Name, &p.Position, &p.Number, &category); err != nil {
		return nil, err
	}
	p.Category = handball.Category(category)
	return &p, nil
}

func ToAnySlice[T any](s []T) []any {
	a := make([]any, len(s))
	for i, v := range s {
		a[i] = v
	}
	return a
}
