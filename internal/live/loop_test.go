package live_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) Stopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type tickerFactory struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (f *tickerFactory) New(time.Duration) live.Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{c: make(chan time.Time)}
	f.tickers = append(f.tickers, t)
	return t
}

func (f *tickerFactory) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

func (f *tickerFactory) Last() *fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickers[len(f.tickers)-1]
}

type runHarness struct {
	session  *live.Session
	commands chan live.Command
	factory  *tickerFactory
	out      *bytes.Buffer
	done     chan error
}

func startRun(t *testing.T, saver live.Saver, opts ...live.Option) *runHarness {
	t.Helper()
	h := &runHarness{
		session:  live.NewSession(newMatch()),
		commands: make(chan live.Command),
		factory:  &tickerFactory{},
		out:      &bytes.Buffer{},
		done:     make(chan error, 1),
	}
	t0 := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	opts = append([]live.Option{
		live.WithTicker(h.factory.New),
		live.WithClock(func() time.Time { return t0 }),
	}, opts...)
	go func() {
		h.done <- live.Run(context.Background(), h.session, h.commands, saver, h.out, opts...)
	}()
	return h
}

func (h *runHarness) send(line string) {
	cmd, err := live.ParseCommand(line)
	if err != nil {
		panic(err)
	}
	h.commands <- cmd
}

func (h *runHarness) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("live loop did not return")
		return nil
	}
}

func TestRun_TickerOnlyWhileRunning(t *testing.T) {
	h := startRun(t, saverFunc(func(context.Context, int64, handball.StatsUpdate) error { return nil }))

	h.send("status")
	assert.Equal(t, 0, h.factory.Count())

	h.send("start")
	require.Eventually(t, func() bool { return h.factory.Count() == 1 }, time.Second, time.Millisecond)
	ticker := h.factory.Last()
	base := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	for k := 1; k <= 3; k++ {
		ticker.c <- base.Add(time.Duration(k) * time.Second)
	}

	h.send("toggle")
	require.Eventually(t, ticker.Stopped, time.Second, time.Millisecond)

	h.send("quit")
	require.NoError(t, h.wait(t))

	assert.Equal(t, 3*time.Second, h.session.Elapsed)
	assert.Equal(t, 3, h.session.Players[0].PlayTime)
	assert.Equal(t, 0, h.session.Players[2].PlayTime)
	assert.Equal(t, 1, h.factory.Count())
	assert.Contains(t, h.out.String(), "vs Rivas")
}

func TestRun_TickerStoppedOnExit(t *testing.T) {
	h := startRun(t, saverFunc(func(context.Context, int64, handball.StatsUpdate) error { return nil }))

	h.send("start")
	require.Eventually(t, func() bool { return h.factory.Count() == 1 }, time.Second, time.Millisecond)
	h.send("quit")
	require.NoError(t, h.wait(t))
	assert.True(t, h.factory.Last().Stopped())
}

func TestRun_SaveRetries(t *testing.T) {
	calls := 0
	draft := filepath.Join(t.TempDir(), "draft.msgpack")
	h := startRun(t, saverFunc(func(_ context.Context, _ int64, update handball.StatsUpdate) error {
		calls++
		if calls == 1 {
			return errors.New("server unavailable")
		}
		return nil
	}), live.WithDraft(draft))

	h.send("inc 10 goals")
	h.send("opp+")
	h.send("sub 11 12")
	h.send("save")

	loaded, err := live.LoadDraft(draft)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.Players[0].Goals)

	h.send("save")
	require.NoError(t, h.wait(t))

	assert.Equal(t, 2, calls)
	assert.True(t, h.session.Finalized())
	assert.Equal(t, 3, h.session.TeamScore())
	assert.Equal(t, 2, h.session.OpponentScore)
	assert.True(t, h.session.Players[2].Playing)
	assert.Contains(t, h.out.String(), "server unavailable")
	assert.Contains(t, h.out.String(), "saved: 3 - 2")

	gone, err := live.LoadDraft(draft)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRun_FailedSaveKeepsClockRunning(t *testing.T) {
	h := startRun(t, saverFunc(func(context.Context, int64, handball.StatsUpdate) error {
		return errors.New("server unavailable")
	}))

	h.send("start")
	require.Eventually(t, func() bool { return h.factory.Count() == 1 }, time.Second, time.Millisecond)
	ticker := h.factory.Last()
	h.send("save")
	h.send("status")
	assert.False(t, ticker.Stopped())
	assert.True(t, h.session.Running())

	h.send("quit")
	require.NoError(t, h.wait(t))

	assert.Equal(t, 1, h.factory.Count())
	assert.False(t, h.session.Finalized())
	assert.Contains(t, h.out.String(), "server unavailable")
	assert.Contains(t, h.out.String(), "running")
}

func TestRun_ClosedCommandsEndsLoop(t *testing.T) {
	h := startRun(t, saverFunc(func(context.Context, int64, handball.StatsUpdate) error { return nil }))
	close(h.commands)
	require.NoError(t, h.wait(t))
}
