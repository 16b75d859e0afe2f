package engine

import (
	"math/rand/v2"
	"sync"
	"time"
)

// FoodSource picks the next food cell for a grid
type FoodSource interface {
	Next(g Grid) Cell
}

// RandomFood draws food uniformly over the whole grid.
// Occupied cells are not excluded.
type RandomFood struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomFood creates a seeded source; seed 0 seeds from the clock
func NewRandomFood(seed uint64) *RandomFood {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomFood{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Next returns a uniformly random cell within g
func (f *RandomFood) Next(g Grid) Cell {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Cell{
		X: f.rng.IntN(g.Width),
		Y: f.rng.IntN(g.Height),
	}
}

// FixedFood replays a fixed list of cells, repeating the last one when exhausted
type FixedFood struct {
	mu    sync.Mutex
	cells []Cell
	next  int
	calls int
}

// NewFixedFood creates a source that yields cells in order
func NewFixedFood(cells ...Cell) *FixedFood {
	return &FixedFood{cells: cells}
}

// Next returns the next queued cell
func (f *FixedFood) Next(Grid) Cell {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.cells) == 0 {
		return Cell{}
	}
	c := f.cells[f.next]
	if f.next < len(f.cells)-1 {
		f.next++
	}
	return c
}

// Calls returns how many times Next has been called
func (f *FixedFood) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
