package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

type runConfig struct {
	now       func() time.Time
	newTicker func(time.Duration) Ticker
	draftPath string
}

// Option customises Run.
type Option func(*runConfig)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *runConfig) { c.now = now }
}

// WithTicker replaces the ticker factory.
func WithTicker(f func(time.Duration) Ticker) Option {
	return func(c *runConfig) { c.newTicker = f }
}

// WithDraft enables writing a draft after every change.
func WithDraft(path string) Option {
	return func(c *runConfig) { c.draftPath = path }
}

// Run drives a session from a stream of commands and a one second ticker. The
// ticker only exists while the clock runs. Run returns nil after a successful
// save, on quit, or when commands is closed.
func Run(ctx context.Context, s *Session, commands <-chan Command, saver Saver, out io.Writer, opts ...Option) error {
	cfg := runConfig{now: time.Now, newTicker: NewTimeTicker}
	for _, opt := range opts {
		opt(&cfg)
	}

	var ticker Ticker
	var tickC <-chan time.Time
	syncTicker := func() {
		switch {
		case s.Running() && ticker == nil:
			ticker = cfg.newTicker(time.Second)
			tickC = ticker.C()
		case !s.Running() && ticker != nil:
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
	}
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tickC:
			s.Tick(now)
			cfg.saveDraft(s)
		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			done, err := handle(ctx, s, cmd, saver, out, cfg)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			syncTicker()
			if done {
				return nil
			}
		}
	}
}

func handle(ctx context.Context, s *Session, cmd Command, saver Saver, out io.Writer, cfg runConfig) (bool, error) {
	var err error
	switch cmd.Kind {
	case CmdStart:
		err = s.Start(cfg.now())
	case CmdStop:
		s.Stop()
	case CmdToggle:
		err = s.Toggle(cfg.now())
	case CmdInc:
		err = s.Increment(cmd.MatchPlayerID, cmd.Stat)
	case CmdSub:
		err = s.Substitute(cmd.Out, cmd.In)
	case CmdOppInc:
		err = s.IncOpponentScore()
	case CmdOppDec:
		err = s.DecOpponentScore()
	case CmdStatus:
		WriteStatus(out, s)
		return false, nil
	case CmdQuit:
		cfg.saveDraft(s)
		return true, nil
	case CmdSave:
		// The clock keeps running until the save succeeds.
		if err := s.Finalize(ctx, saver); err != nil {
			return false, err
		}
		if cfg.draftPath != "" {
			if err := RemoveDraft(cfg.draftPath); err != nil {
				log.Warn("Failed to remove draft", "error", err, "path", cfg.draftPath)
			}
		}
		fmt.Fprintf(out, "saved: %d - %d\n", s.TeamScore(), s.OpponentScore)
		return true, nil
	default:
		return false, fmt.Errorf("unsupported command %q", cmd.Kind)
	}
	if err != nil {
		return errors.Is(err, ErrFinalized), err
	}
	cfg.saveDraft(s)
	return false, nil
}

func (c runConfig) saveDraft(s *Session) {
	if c.draftPath == "" {
		return
	}
	if err := SaveDraft(c.draftPath, s); err != nil {
		log.Warn("Failed to write draft", "error", err, "path", c.draftPath)
	}
}

// WriteStatus prints the scoreboard, the clock and the players on court.
func WriteStatus(out io.Writer, s *Session) {
	state := "stopped"
	if s.Running() {
		state = "running"
	}
	secs := int(s.Elapsed / time.Second)
	fmt.Fprintf(out, "vs %s  %d - %d  %02d:%02d (%s)\n", s.Opponent, s.TeamScore(), s.OpponentScore, secs/60, secs%60, state)
	for _, p := range s.Players {
		marker := " "
		if p.Playing {
			marker = "*"
		}
		name := fmt.Sprintf("player %d", p.PlayerID)
		if p.Player != nil {
			name = fmt.Sprintf("#%d %s", p.Player.Number, p.Player.Name)
		}
		fmt.Fprintf(out, "%s [%d] %-24s G:%d A:%d S:%d T:%d t:%ds\n",
			marker, p.ID, name, p.Goals, p.Assists, p.Saves, p.Turnovers, p.PlayTime)
	}
}
