package engine

import (
	"sync"

	"github.com/lixenwraith/quadsnake/constants"
)

// Engine owns the game state and applies one simulation step per Advance.
// All methods are safe for concurrent use; a heading change never lands
// inside a partially applied step.
type Engine struct {
	mu sync.RWMutex

	grid  Grid
	foods FoodSource

	snake    []Cell // head first
	food     Cell
	heading  Heading
	terminal bool
	tick     uint64
}

// NewEngine creates an engine in the initial state
func NewEngine(grid Grid, foods FoodSource) *Engine {
	if foods == nil {
		foods = NewRandomFood(0)
	}
	e := &Engine{
		grid:  grid,
		foods: foods,
	}
	e.resetLocked()
	return e
}

// DefaultGrid is the fixed board size
func DefaultGrid() Grid {
	return Grid{Width: constants.GridWidth, Height: constants.GridHeight}
}

// InitialSnake returns a fresh copy of the starting body
func InitialSnake() []Cell {
	body := make([]Cell, len(constants.InitialSnake))
	for i, seg := range constants.InitialSnake {
		body[i] = Cell{X: seg[0], Y: seg[1]}
	}
	return body
}

// SetHeading replaces the heading unless the game is over or requested
// reverses the current heading. Reports whether the request was accepted.
func (e *Engine) SetHeading(requested Heading) bool {
	if !requested.Valid() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.terminal || e.heading.IsOpposite(requested) {
		return false
	}
	e.heading = requested
	return true
}

// Advance applies one step and returns the resulting snapshot.
// A terminal game is left untouched.
func (e *Engine) Advance() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.terminal {
		return e.snapshotLocked()
	}

	newHead := NextHead(e.snake[0], e.heading)

	// Collision runs against the body as it was before the move
	if Collides(e.grid, e.snake, newHead) {
		e.terminal = true
		return e.snapshotLocked()
	}

	keep := len(e.snake) - 1
	if newHead == e.food {
		// Growth: the tail stays for this step
		keep = len(e.snake)
		e.food = e.foods.Next(e.grid)
	}

	next := make([]Cell, 0, keep+1)
	next = append(next, newHead)
	next = append(next, e.snake[:keep]...)
	e.snake = next
	e.tick++

	return e.snapshotLocked()
}

// Reset restores the initial layout with fresh food
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

func (e *Engine) resetLocked() {
	e.snake = InitialSnake()
	e.food = e.foods.Next(e.grid)
	e.heading = HeadingRight
	e.terminal = false
	e.tick = 0
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

// Terminal reports whether the game is over
func (e *Engine) Terminal() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.terminal
}

// Grid returns the board size
func (e *Engine) Grid() Grid {
	return e.grid
}

func (e *Engine) snapshotLocked() Snapshot {
	body := make([]Cell, len(e.snake))
	copy(body, e.snake)
	return Snapshot{
		Grid:     e.grid,
		Snake:    body,
		Food:     e.food,
		Heading:  e.heading,
		Terminal: e.terminal,
		Tick:     e.tick,
	}
}
