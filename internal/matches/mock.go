package matches

import (
	"sync"
	"time"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// UpdateCall records one UpdateMatchStats invocation.
type UpdateCall struct {
	ID            int64
	Updates       []handball.StatUpdate
	OpponentScore *int
}

// MockStore is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	CreateMatchFunc        func(opponent string, date time.Time, location string, selected []handball.Selection) (*handball.Match, error)
	GetMatchFunc           func(id int64) (*handball.Match, error)
	UpdateMatchStatsFunc   func(id int64, updates []handball.StatUpdate, opponentScore *int) error
	GetAllMatchesFunc      func() ([]handball.Match, error)
	GetAllMatchPlayersFunc func() ([]handball.MatchPlayer, error)

	UpdateCalls []UpdateCall
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreateMatch(opponent string, date time.Time, location string, selected []handball.Selection) (*handball.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(opponent, date, location, selected)
	}
	return &handball.Match{ID: 1, Opponent: opponent, Date: date, Location: location, MatchPlayers: []handball.MatchPlayer{}}, nil
}

func (m *MockStore) GetMatch(id int64) (*handball.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(id)
	}
	return nil, handball.ErrNotFound
}

func (m *MockStore) UpdateMatchStats(id int64, updates []handball.StatUpdate, opponentScore *int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, UpdateCall{ID: id, Updates: updates, OpponentScore: opponentScore})
	if m.UpdateMatchStatsFunc != nil {
		return m.UpdateMatchStatsFunc(id, updates, opponentScore)
	}
	return nil
}

func (m *MockStore) GetAllMatches() ([]handball.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return []handball.Match{}, nil
}

func (m *MockStore) GetAllMatchPlayers() ([]handball.MatchPlayer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchPlayersFunc != nil {
		return m.GetAllMatchPlayersFunc()
	}
	return []handball.MatchPlayer{}, nil
}

// Updates returns a copy of the recorded UpdateMatchStats calls.
func (m *MockStore) Updates() []UpdateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]UpdateCall, len(m.UpdateCalls))
	copy(out, m.UpdateCalls)
	return out
}
