package processor

import (
	"errors"
	"testing"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/matches"
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/notifier"
	"github.com/mauv0809/handball-stats/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishedMatch() *handball.Match {
	return &handball.Match{
		ID:            3,
		Opponent:      "Rivas",
		OpponentScore: 18,
		MatchPlayers: []handball.MatchPlayer{
			{ID: 1, Counters: handball.Counters{Goals: 11}},
			{ID: 2, Counters: handball.Counters{Goals: 9}},
		},
	}
}

func newStore() *matches.MockStore {
	store := matches.NewMock()
	store.GetMatchFunc = func(id int64) (*handball.Match, error) {
		if id != 3 {
			return nil, handball.ErrNotFound
		}
		return finishedMatch(), nil
	}
	return store
}

func TestProcessor_MatchFinalized(t *testing.T) {
	t.Run("without pubsub the result is announced in-process", func(t *testing.T) {
		notif := notifier.NewMock()
		metr := metrics.NewMock()
		p := New(newStore(), notif, metr, nil)

		require.NoError(t, p.MatchFinalized(3, false))

		require.Len(t, notif.ResultNotifications(), 1)
		assert.Equal(t, 20, notif.ResultNotifications()[0].TeamScore())
		assert.Equal(t, 1, metr.MatchesFinalized())
	})

	t.Run("the match is loaded once", func(t *testing.T) {
		store := newStore()
		loads := 0
		get := store.GetMatchFunc
		store.GetMatchFunc = func(id int64) (*handball.Match, error) {
			loads++
			return get(id)
		}
		notif := notifier.NewMock()
		p := New(store, notif, metrics.NewMock(), nil)

		require.NoError(t, p.MatchFinalized(3, false))

		assert.Equal(t, 1, loads)
		require.Len(t, notif.ResultNotifications(), 1)
	})

	t.Run("with pubsub an event is published instead", func(t *testing.T) {
		notif := notifier.NewMock()
		ps := pubsub.NewMock()
		p := New(newStore(), notif, metrics.NewMock(), ps)

		require.NoError(t, p.MatchFinalized(3, false))

		assert.Empty(t, notif.ResultNotifications())
		sent := ps.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, pubsub.EventMatchFinalized, sent[0].Topic)
		event := sent[0].Data.(pubsub.MatchEvent)
		assert.Equal(t, int64(3), event.MatchID)
		assert.Equal(t, 20, event.TeamScore)
	})

	t.Run("dry run does not publish", func(t *testing.T) {
		ps := pubsub.NewMock()
		p := New(newStore(), notifier.NewMock(), metrics.NewMock(), ps)

		require.NoError(t, p.MatchFinalized(3, true))
		assert.Empty(t, ps.Sent())
	})

	t.Run("unknown match", func(t *testing.T) {
		metr := metrics.NewMock()
		p := New(newStore(), notifier.NewMock(), metr, nil)

		err := p.MatchFinalized(99, false)
		assert.ErrorIs(t, err, handball.ErrNotFound)
		assert.Equal(t, 0, metr.MatchesFinalized())
	})

	t.Run("no notifier configured", func(t *testing.T) {
		p := New(newStore(), nil, metrics.NewMock(), nil)
		assert.NoError(t, p.MatchFinalized(3, false))
	})

	t.Run("notifier failure is returned", func(t *testing.T) {
		notif := notifier.NewMock()
		notif.SendResultNotificationFunc = func(*handball.Match, bool) error { return errors.New("slack down") }
		p := New(newStore(), notif, metrics.NewMock(), nil)
		assert.Error(t, p.MatchFinalized(3, false))
	})
}

func TestProcessor_MatchCreated(t *testing.T) {
	ps := pubsub.NewMock()
	metr := metrics.NewMock()
	p := New(newStore(), nil, metr, ps)

	p.MatchCreated(finishedMatch(), false)

	assert.Equal(t, 1, metr.MatchesCreated())
	sent := ps.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, pubsub.EventMatchCreated, sent[0].Topic)
}

func TestProcessor_HandleEvent(t *testing.T) {
	ps := pubsub.NewMock()
	notif := notifier.NewMock()
	p := New(newStore(), notif, metrics.NewMock(), ps)

	require.NoError(t, ps.SendMessage(pubsub.EventMatchFinalized, pubsub.NewMatchEvent(finishedMatch())))
	data := ps.Sent()[0].Encoded

	require.NoError(t, p.HandleEvent(pubsub.EventMatchFinalized, data, false))
	require.Len(t, notif.ResultNotifications(), 1)

	require.NoError(t, p.HandleEvent(pubsub.EventMatchCreated, data, false))
	assert.Len(t, notif.ResultNotifications(), 1)

	err := p.HandleEvent("match-deleted", data, false)
	assert.ErrorIs(t, err, handball.ErrInvalidInput)

	err = p.HandleEvent(pubsub.EventMatchFinalized, []byte{0xc1}, false)
	assert.ErrorIs(t, err, handball.ErrInvalidInput)
}
