package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/quadsnake/core"
)

// ClockState is the run state of a Clock
type ClockState uint8

const (
	ClockStopped ClockState = iota
	ClockRunning
)

func (s ClockState) String() string {
	switch s {
	case ClockStopped:
		return "Stopped"
	case ClockRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// TickFunc runs one simulation step and reports whether the game reached its terminal state
type TickFunc func() (terminal bool)

// Clock drives a TickFunc on a fixed interval.
// The timer is re-armed only after a tick returns, so ticks never overlap
// and at most one is pending. A terminal tick stops the clock.
type Clock struct {
	interval time.Duration
	tick     TickFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	ticks atomic.Uint64
}

// NewClock creates a stopped clock
func NewClock(interval time.Duration, tick TickFunc) *Clock {
	return &Clock{
		interval: interval,
		tick:     tick,
	}
}

// Interval returns the tick cadence
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Start moves the clock to Running. Returns false if it is already running.
func (c *Clock) Start(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done != nil {
		select {
		case <-c.done:
			// Previous run ended on its own (terminal tick or parent cancel)
		default:
			return false
		}
	}
	if c.cancel != nil {
		c.cancel()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	core.Go(func() { c.loop(loopCtx, done) })
	return true
}

// Stop cancels the schedule and waits for the loop to exit.
// No tick fires after Stop returns. Must not be called from inside the TickFunc.
func (c *Clock) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Restart stops any current run and starts again with a fresh timer
func (c *Clock) Restart(ctx context.Context) {
	c.Stop()
	c.Start(ctx)
}

// State reports whether the loop is live
func (c *Clock) State() ClockState {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return ClockStopped
	}
	select {
	case <-done:
		return ClockStopped
	default:
		return ClockRunning
	}
}

// Done returns a channel closed when the current run ends.
// With no run, the returned channel is already closed.
func (c *Clock) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return c.done
}

// Ticks returns the number of ticks run since creation
func (c *Clock) Ticks() uint64 {
	return c.ticks.Load()
}

func (c *Clock) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		// Timer and cancel can be ready together; cancel wins
		if ctx.Err() != nil {
			return
		}

		c.ticks.Add(1)
		if c.tick() {
			return
		}
		timer.Reset(c.interval)
	}
}
