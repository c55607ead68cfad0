package pubsub

import (
	"testing"
	"time"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEventEncoding(t *testing.T) {
	match := &handball.Match{
		ID:            4,
		Opponent:      "Rivas",
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Location:      "Home",
		OpponentScore: 20,
		MatchPlayers: []handball.MatchPlayer{
			{Counters: handball.Counters{Goals: 12}},
			{Counters: handball.Counters{Goals: 10}},
		},
	}
	event := NewMatchEvent(match)
	assert.Equal(t, 22, event.TeamScore)
	assert.Equal(t, 2, event.Players)

	mock := NewMock()
	require.NoError(t, mock.SendMessage(EventMatchFinalized, event))
	sent := mock.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, EventMatchFinalized, sent[0].Topic)

	var decoded MatchEvent
	require.NoError(t, mock.ProcessMessage(sent[0].Encoded, &decoded))
	assert.Equal(t, event, decoded)
}

func TestProcessMessage_InvalidData(t *testing.T) {
	var decoded MatchEvent
	err := NewMock().ProcessMessage([]byte{0xc1}, &decoded)
	assert.Error(t, err)
}
