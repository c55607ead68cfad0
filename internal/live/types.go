package live

import (
	"context"
	"errors"
	"time"

	"github.com/mauv0809/handball-stats/internal/handball"
)

var (
	// ErrFinalized is returned by every mutation once the session was saved.
	ErrFinalized = errors.New("session already finalized")
	// ErrUnknownPlayer is returned for a match player id that is not in the session.
	ErrUnknownPlayer = errors.New("unknown match player")
	// ErrNotOnCourt is returned when substituting out a player who is on the bench.
	ErrNotOnCourt = errors.New("player is not on court")
	// ErrNotOnBench is returned when substituting in a player who is already playing.
	ErrNotOnBench = errors.New("player is not on the bench")
)

// LivePlayer is the in-memory working copy of a MatchPlayer during a game.
type LivePlayer struct {
	handball.MatchPlayer `msgpack:",inline"`
	Playing              bool `json:"playing" msgpack:"playing"`
}

// Session holds the state of one match being tracked live. It is owned by a
// single goroutine and is not safe for concurrent use.
type Session struct {
	MatchID       int64         `msgpack:"match_id"`
	Opponent      string        `msgpack:"opponent"`
	Players       []*LivePlayer `msgpack:"players"`
	OpponentScore int           `msgpack:"opponent_score"`
	Elapsed       time.Duration `msgpack:"elapsed"`

	running   bool
	start     time.Time
	finalized bool
}

// Saver persists the final counters of a session.
type Saver interface {
	UpdateMatchStats(ctx context.Context, matchID int64, update handball.StatsUpdate) error
}

// CommandKind identifies a user action in the live loop.
type CommandKind string

const (
	CmdStart  CommandKind = "start"
	CmdStop   CommandKind = "stop"
	CmdToggle CommandKind = "toggle"
	CmdInc    CommandKind = "inc"
	CmdSub    CommandKind = "sub"
	CmdOppInc CommandKind = "opp+"
	CmdOppDec CommandKind = "opp-"
	CmdStatus CommandKind = "status"
	CmdSave   CommandKind = "save"
	CmdQuit   CommandKind = "quit"
)

// Command is one parsed user action.
type Command struct {
	Kind          CommandKind
	MatchPlayerID int64
	Stat          handball.Stat
	Out           int64
	In            int64
}

// Ticker is the subset of *time.Ticker the loop needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}
