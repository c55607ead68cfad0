package live_test

import (
	"testing"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want live.Command
	}{
		{"start", live.Command{Kind: live.CmdStart}},
		{"  STOP ", live.Command{Kind: live.CmdStop}},
		{"toggle", live.Command{Kind: live.CmdToggle}},
		{"inc 12 goals", live.Command{Kind: live.CmdInc, MatchPlayerID: 12, Stat: handball.StatGoals}},
		{"inc 3 foulsCommitted", live.Command{Kind: live.CmdInc, MatchPlayerID: 3, Stat: handball.StatFoulsCommitted}},
		{"sub 4 9", live.Command{Kind: live.CmdSub, Out: 4, In: 9}},
		{"opp+", live.Command{Kind: live.CmdOppInc}},
		{"opp-", live.Command{Kind: live.CmdOppDec}},
		{"status", live.Command{Kind: live.CmdStatus}},
		{"save", live.Command{Kind: live.CmdSave}},
		{"quit", live.Command{Kind: live.CmdQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := live.ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	for _, line := range []string{
		"",
		"jump",
		"start now",
		"inc 12",
		"inc x goals",
		"inc 12 dunks",
		"sub 4",
		"sub 4 -1",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := live.ParseCommand(line)
			assert.ErrorIs(t, err, handball.ErrInvalidInput)
		})
	}
}
