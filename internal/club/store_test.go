package club_test

import (
	"database/sql"
	"testing"

	"github.com/mauv0809/handball-stats/internal/club"
	"github.com/mauv0809/handball-stats/internal/database"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (club.ClubStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return club.New(db), db, dbTeardown
}

func TestAddAndGetPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p1, err := store.AddPlayer("Lucía Gómez", "Portero", 1, handball.CategoryFemale)
	require.NoError(t, err)
	p2, err := store.AddPlayer("Marta Ruiz", "Lateral", 7, handball.CategoryFemale)
	require.NoError(t, err)
	assert.Less(t, p1.ID, p2.ID)

	allPlayers, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, allPlayers, 2)
	assert.Equal(t, *p1, allPlayers[0])
	assert.Equal(t, *p2, allPlayers[1])
	assert.Equal(t, 7, allPlayers[1].Number)
}

func TestAddPlayer_AllowsDuplicates(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.AddPlayer("Ana", "Central", 9, handball.CategoryFemale)
	require.NoError(t, err)
	_, err = store.AddPlayer("Ana", "Central", 9, handball.CategoryFemale)
	require.NoError(t, err)

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestAddPlayer_Validation(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	tests := []struct {
		name     string
		player   string
		position string
		number   int
		category handball.Category
	}{
		{"missing name", "", "Lateral", 4, handball.CategoryMale},
		{"missing position", "Juan", " ", 4, handball.CategoryMale},
		{"missing number", "Juan", "Lateral", 0, handball.CategoryMale},
		{"missing category", "Juan", "Lateral", 4, ""},
		{"unknown category", "Juan", "Lateral", 4, "MIXTO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.AddPlayer(tt.player, tt.position, tt.number, tt.category)
			assert.ErrorIs(t, err, handball.ErrInvalidInput)
		})
	}

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestGetPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	created, err := store.AddPlayer("Pablo", "Pivote", 15, handball.CategoryMale)
	require.NoError(t, err)

	got, err := store.GetPlayer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = store.GetPlayer(999)
	assert.ErrorIs(t, err, handball.ErrNotFound)
}

func TestGetPlayers(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	_, err := db.Exec(`INSERT INTO players (id, name, position, number, category) VALUES
		(1, 'Player One', 'Lateral', 3, 'MASCULINO'),
		(2, 'Player Two', 'Central', 5, 'MASCULINO'),
		(3, 'Player Three', 'Extremo', 11, 'MASCULINO')`)
	require.NoError(t, err)

	t.Run("gets multiple players", func(t *testing.T) {
		players, err := store.GetPlayers([]int64{3, 1})
		require.NoError(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, "Player One", players[0].Name)
		assert.Equal(t, "Player Three", players[1].Name)
	})

	t.Run("returns empty slice for unknown ids", func(t *testing.T) {
		players, err := store.GetPlayers([]int64{4, 5})
		require.NoError(t, err)
		assert.Len(t, players, 0)
	})

	t.Run("returns empty slice for empty id slice", func(t *testing.T) {
		players, err := store.GetPlayers([]int64{})
		require.NoError(t, err)
		assert.Len(t, players, 0)
	})
}
