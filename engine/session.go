package engine

import (
	"context"
	"log"
	"sync"
	"time"
)

// Observer receives a snapshot after every tick and after a restart.
// Observers run on the notifying goroutine and must not block. An observer
// may unsubscribe itself; removal takes effect from the next notification.
type Observer func(Snapshot)

// Session wires one Engine to one Clock and fans snapshots out to observers
type Session struct {
	engine *Engine
	clock  *Clock

	// Serializes start/stop/restart
	lifecycle sync.Mutex
	ctx       context.Context
	stopped   bool

	obsMu     sync.RWMutex
	observers map[uint64]Observer
	nextObsID uint64
}

// NewSession creates a stopped session ticking at interval
func NewSession(eng *Engine, interval time.Duration) *Session {
	s := &Session{
		engine:    eng,
		observers: make(map[uint64]Observer),
		ctx:       context.Background(),
	}
	s.clock = NewClock(interval, s.step)
	return s
}

// Engine returns the underlying engine
func (s *Session) Engine() *Engine {
	return s.engine
}

// Clock returns the underlying clock
func (s *Session) Clock() *Clock {
	return s.clock
}

// Start begins ticking and publishes the current state
func (s *Session) Start(ctx context.Context) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.ctx = ctx
	s.stopped = false
	s.notify(s.engine.Snapshot())
	if s.engine.Terminal() {
		return
	}
	s.clock.Start(ctx)
}

// Stop halts ticking; no tick runs after it returns. Restart and Tap cannot
// resume the clock until the next Start.
func (s *Session) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	s.stopped = true
	s.clock.Stop()
}

// Steer forwards a directional intent to the engine
func (s *Session) Steer(h Heading) bool {
	ok := s.engine.SetHeading(h)
	if ok {
		log.Printf("steer: heading=%s", h)
	}
	return ok
}

// Tap handles a quadrant tap: restart when the game is over, steer otherwise
func (s *Session) Tap(h Heading) {
	if s.engine.Terminal() {
		s.Restart()
		return
	}
	s.Steer(h)
}

// Restart resets a finished game and starts a fresh clock run.
// Returns false while the game is still in play or after Stop.
func (s *Session) Restart() bool {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.stopped || !s.engine.Terminal() {
		return false
	}

	s.clock.Stop()
	s.engine.Reset()
	snap := s.engine.Snapshot()
	log.Printf("restart: food=(%d,%d)", snap.Food.X, snap.Food.Y)

	s.notify(snap)
	s.clock.Start(s.ctx)
	return true
}

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	return s.engine.Snapshot()
}

// Subscribe registers fn for snapshots; the returned func removes it
func (s *Session) Subscribe(fn Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			delete(s.observers, id)
			s.obsMu.Unlock()
		})
	}
}

// step is the clock's TickFunc
func (s *Session) step() bool {
	snap := s.engine.Advance()
	if snap.Terminal {
		log.Printf("game over: tick=%d length=%d head=(%d,%d)", snap.Tick, len(snap.Snake), snap.Head().X, snap.Head().Y)
	}
	s.notify(snap)
	return snap.Terminal
}

func (s *Session) notify(snap Snapshot) {
	s.obsMu.RLock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.obsMu.RUnlock()

	for _, fn := range observers {
		fn(snap)
	}
}
