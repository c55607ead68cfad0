package live

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
)

// NewSession seeds a session from a persisted match. Starters begin on court.
func NewSession(match *handball.Match) *Session {
	s := &Session{
		MatchID:       match.ID,
		Opponent:      match.Opponent,
		OpponentScore: match.OpponentScore,
		Players:       make([]*LivePlayer, 0, len(match.MatchPlayers)),
	}
	for _, mp := range match.MatchPlayers {
		s.Players = append(s.Players, &LivePlayer{MatchPlayer: mp, Playing: mp.Starter})
	}
	return s
}

// Running reports whether the clock is running.
func (s *Session) Running() bool { return s.running }

// Finalized reports whether the session was saved.
func (s *Session) Finalized() bool { return s.finalized }

// Start starts the clock so that elapsed time continues from its current value.
func (s *Session) Start(now time.Time) error {
	if s.finalized {
		return ErrFinalized
	}
	if s.running {
		return nil
	}
	s.start = now.Add(-s.Elapsed)
	s.running = true
	return nil
}

// Stop halts the clock. Elapsed time is kept.
func (s *Session) Stop() {
	s.running = false
}

// Toggle starts a stopped clock or stops a running one.
func (s *Session) Toggle(now time.Time) error {
	if s.running {
		s.Stop()
		return nil
	}
	return s.Start(now)
}

// Tick advances the clock and adds one second of play time to every player on court.
func (s *Session) Tick(now time.Time) {
	if !s.running || s.finalized {
		return
	}
	s.Elapsed = now.Sub(s.start)
	for _, p := range s.Players {
		if p.Playing {
			p.PlayTime++
		}
	}
}

// Player returns the live player with the given match player id.
func (s *Session) Player(matchPlayerID int64) (*LivePlayer, error) {
	for _, p := range s.Players {
		if p.ID == matchPlayerID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, matchPlayerID)
}

// Increment adds one to a single counter of a single player.
func (s *Session) Increment(matchPlayerID int64, stat handball.Stat) error {
	if s.finalized {
		return ErrFinalized
	}
	p, err := s.Player(matchPlayerID)
	if err != nil {
		return err
	}
	return p.Increment(stat)
}

// Substitute swaps a player on court with one from the bench. A zero id on
// either side leaves the session unchanged.
func (s *Session) Substitute(out, in int64) error {
	if s.finalized {
		return ErrFinalized
	}
	if out == 0 || in == 0 {
		return nil
	}
	outgoing, err := s.Player(out)
	if err != nil {
		return err
	}
	incoming, err := s.Player(in)
	if err != nil {
		return err
	}
	if !outgoing.Playing {
		return fmt.Errorf("%w: %d", ErrNotOnCourt, out)
	}
	if incoming.Playing {
		return fmt.Errorf("%w: %d", ErrNotOnBench, in)
	}
	outgoing.Playing = false
	incoming.Playing = true
	return nil
}

// IncOpponentScore adds one goal to the opponent.
func (s *Session) IncOpponentScore() error {
	if s.finalized {
		return ErrFinalized
	}
	s.OpponentScore++
	return nil
}

// DecOpponentScore removes one goal from the opponent, never going below zero.
func (s *Session) DecOpponentScore() error {
	if s.finalized {
		return ErrFinalized
	}
	if s.OpponentScore > 0 {
		s.OpponentScore--
	}
	return nil
}

// TeamScore is the sum of goals of every player in the session.
func (s *Session) TeamScore() int {
	total := 0
	for _, p := range s.Players {
		total += p.Goals
	}
	return total
}

// OnCourt returns the players currently playing.
func (s *Session) OnCourt() []*LivePlayer {
	var out []*LivePlayer
	for _, p := range s.Players {
		if p.Playing {
			out = append(out, p)
		}
	}
	return out
}

// Update projects the session into the batch persisted by the match store.
func (s *Session) Update() handball.StatsUpdate {
	score := s.OpponentScore
	update := handball.StatsUpdate{
		UpdatedStats:  make([]handball.StatUpdate, 0, len(s.Players)),
		OpponentScore: &score,
	}
	for _, p := range s.Players {
		update.UpdatedStats = append(update.UpdatedStats, handball.StatUpdate{
			MatchPlayerID: p.ID,
			Counters:      p.Counters,
		})
	}
	return update
}

// Finalize submits the session. On failure the session is untouched and the
// call can be retried; on success the session no longer accepts mutations.
func (s *Session) Finalize(ctx context.Context, saver Saver) error {
	if s.finalized {
		return ErrFinalized
	}
	if err := saver.UpdateMatchStats(ctx, s.MatchID, s.Update()); err != nil {
		log.Error("Failed to save match", "error", err, "match_id", s.MatchID)
		return fmt.Errorf("failed to save match %d: %w", s.MatchID, err)
	}
	s.running = false
	s.finalized = true
	log.Info("Match saved", "match_id", s.MatchID, "team_score", s.TeamScore(), "opponent_score", s.OpponentScore)
	return nil
}
