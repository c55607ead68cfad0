package live_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.msgpack")

	s := live.NewSession(newMatch())
	require.NoError(t, s.Increment(11, handball.StatSaves))
	require.NoError(t, s.Substitute(10, 12))
	t0 := time.Now()
	require.NoError(t, s.Start(t0))
	s.Tick(t0.Add(time.Second))
	s.Stop()

	require.NoError(t, live.SaveDraft(path, s))

	loaded, err := live.LoadDraft(path)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, s.MatchID, loaded.MatchID)
	assert.Equal(t, s.Opponent, loaded.Opponent)
	assert.Equal(t, s.OpponentScore, loaded.OpponentScore)
	assert.Equal(t, s.Elapsed, loaded.Elapsed)
	require.Len(t, loaded.Players, 3)
	for i := range s.Players {
		assert.Equal(t, s.Players[i].ID, loaded.Players[i].ID)
		assert.Equal(t, s.Players[i].Playing, loaded.Players[i].Playing)
		assert.Equal(t, s.Players[i].Counters, loaded.Players[i].Counters)
	}
	assert.False(t, loaded.Running())

	require.NoError(t, live.RemoveDraft(path))
	missing, err := live.LoadDraft(path)
	require.NoError(t, err)
	assert.Nil(t, missing)
	require.NoError(t, live.RemoveDraft(path))
}
