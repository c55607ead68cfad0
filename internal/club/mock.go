package club

import (
	"sync"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddPlayerFunc     func(name, position string, number int, category handball.Category) (*handball.Player, error)
	GetAllPlayersFunc func() ([]handball.Player, error)
	GetPlayerFunc     func(id int64) (*handball.Player, error)
	GetPlayersFunc    func(ids []int64) ([]handball.Player, error)

	// Call records
	AddPlayerCalls []handball.Player
	GetPlayerCalls []int64
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = nil
	m.GetPlayerCalls = nil
}

func (m *MockStore) AddPlayer(name, position string, number int, category handball.Category) (*handball.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, handball.Player{Name: name, Position: position, Number: number, Category: category})
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(name, position, number, category)
	}
	return &handball.Player{ID: int64(len(m.AddPlayerCalls)), Name: name, Position: position, Number: number, Category: category}, nil
}

func (m *MockStore) GetAllPlayers() ([]handball.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return []handball.Player{}, nil
}

func (m *MockStore) GetPlayer(id int64) (*handball.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerCalls = append(m.GetPlayerCalls, id)
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return nil, handball.ErrNotFound
}

func (m *MockStore) GetPlayers(ids []int64) ([]handball.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(ids)
	}
	return []handball.Player{}, nil
}
