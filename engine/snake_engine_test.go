package engine

import (
	"reflect"
	"testing"
)

// newTestEngine builds an engine with the given body, heading and food
func newTestEngine(body []Cell, heading Heading, food Cell, next ...Cell) (*Engine, *FixedFood) {
	foods := NewFixedFood(append([]Cell{food}, next...)...)
	e := NewEngine(DefaultGrid(), foods)
	e.snake = append([]Cell(nil), body...)
	e.heading = heading
	return e, foods
}

// TestNewEngineInitialState verifies the start layout
func TestNewEngineInitialState(t *testing.T) {
	e := NewEngine(DefaultGrid(), NewFixedFood(Cell{X: 9, Y: 9}))
	snap := e.Snapshot()

	want := []Cell{{2, 2}, {2, 1}, {2, 0}}
	if !reflect.DeepEqual(snap.Snake, want) {
		t.Errorf("Snake = %v, want %v", snap.Snake, want)
	}
	if snap.Heading != HeadingRight {
		t.Errorf("Heading = %v, want %v", snap.Heading, HeadingRight)
	}
	if snap.Terminal {
		t.Error("new engine should not be terminal")
	}
	if snap.Food != (Cell{9, 9}) {
		t.Errorf("Food = %v, want (9,9)", snap.Food)
	}
	if snap.Grid != (Grid{15, 15}) {
		t.Errorf("Grid = %v, want 15x15", snap.Grid)
	}
}

// TestSetHeading covers every (current, requested) pair
func TestSetHeading(t *testing.T) {
	all := []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

	for _, current := range all {
		for _, requested := range all {
			t.Run(current.String()+"->"+requested.String(), func(t *testing.T) {
				e, _ := newTestEngine(InitialSnake(), current, Cell{X: 9, Y: 9})

				accepted := e.SetHeading(requested)
				got := e.Snapshot().Heading

				if requested == current.Opposite() {
					if accepted || got != current {
						t.Errorf("opposite request applied: accepted=%v heading=%v", accepted, got)
					}
					return
				}
				if !accepted || got != requested {
					t.Errorf("accepted=%v heading=%v, want %v", accepted, got, requested)
				}
			})
		}
	}
}

// TestSetHeadingIgnoredWhenTerminal verifies post-game requests are dropped
func TestSetHeadingIgnoredWhenTerminal(t *testing.T) {
	e, _ := newTestEngine(InitialSnake(), HeadingRight, Cell{X: 9, Y: 9})
	e.terminal = true

	if e.SetHeading(HeadingDown) {
		t.Error("SetHeading should be rejected when terminal")
	}
	if got := e.Snapshot().Heading; got != HeadingRight {
		t.Errorf("Heading = %v, want %v", got, HeadingRight)
	}
}

// TestSetHeadingInvalidValue verifies out-of-range headings are ignored
func TestSetHeadingInvalidValue(t *testing.T) {
	e, _ := newTestEngine(InitialSnake(), HeadingRight, Cell{X: 9, Y: 9})
	if e.SetHeading(Heading(42)) {
		t.Error("invalid heading accepted")
	}
	if got := e.Snapshot().Heading; got != HeadingRight {
		t.Errorf("Heading = %v, want %v", got, HeadingRight)
	}
}

// TestAdvanceFirstStep verifies the documented first move from the start layout
func TestAdvanceFirstStep(t *testing.T) {
	e := NewEngine(DefaultGrid(), NewFixedFood(Cell{X: 10, Y: 10}))

	snap := e.Advance()

	want := []Cell{{3, 2}, {2, 2}, {2, 1}}
	if !reflect.DeepEqual(snap.Snake, want) {
		t.Errorf("Snake = %v, want %v", snap.Snake, want)
	}
	if snap.Terminal {
		t.Error("first step should not end the game")
	}
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, want 1", snap.Tick)
	}
}

// TestAdvanceDirections verifies one-cell steps in each heading
func TestAdvanceDirections(t *testing.T) {
	tests := []struct {
		heading Heading
		want    Cell
	}{
		{HeadingUp, Cell{7, 6}},
		{HeadingDown, Cell{7, 8}},
		{HeadingLeft, Cell{6, 7}},
		{HeadingRight, Cell{8, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.heading.String(), func(t *testing.T) {
			e, _ := newTestEngine([]Cell{{7, 7}}, tt.heading, Cell{X: 0, Y: 0})
			snap := e.Advance()
			if snap.Head() != tt.want {
				t.Errorf("head = %v, want %v", snap.Head(), tt.want)
			}
			if len(snap.Snake) != 1 {
				t.Errorf("length = %d, want 1", len(snap.Snake))
			}
		})
	}
}

// TestAdvanceWallCollision verifies every wall ends the game without moving the snake
func TestAdvanceWallCollision(t *testing.T) {
	tests := []struct {
		name    string
		body    []Cell
		heading Heading
	}{
		{"right wall", []Cell{{14, 5}, {13, 5}}, HeadingRight},
		{"left wall", []Cell{{0, 5}, {1, 5}}, HeadingLeft},
		{"top wall", []Cell{{5, 0}, {5, 1}}, HeadingUp},
		{"bottom wall", []Cell{{5, 14}, {5, 13}}, HeadingDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(tt.body, tt.heading, Cell{X: 9, Y: 9})
			before := e.Snapshot()

			snap := e.Advance()

			if !snap.Terminal {
				t.Fatal("expected terminal after wall hit")
			}
			if !reflect.DeepEqual(snap.Snake, before.Snake) {
				t.Errorf("Snake changed on collision: %v -> %v", before.Snake, snap.Snake)
			}
			if snap.Food != before.Food || snap.Heading != before.Heading || snap.Tick != before.Tick {
				t.Error("state other than terminal changed on collision")
			}
		})
	}
}

// TestAdvanceSelfCollision folds the snake onto its own body
func TestAdvanceSelfCollision(t *testing.T) {
	// Head at (5,5) moving up into (5,4), which is part of the body
	body := []Cell{{5, 5}, {6, 5}, {6, 4}, {5, 4}, {4, 4}}
	e, _ := newTestEngine(body, HeadingUp, Cell{X: 0, Y: 0})

	snap := e.Advance()

	if !snap.Terminal {
		t.Fatal("expected terminal after self collision")
	}
	if !reflect.DeepEqual(snap.Snake, body) {
		t.Errorf("Snake = %v, want unchanged %v", snap.Snake, body)
	}
}

// TestAdvanceTailCellCollides verifies the pre-move tail still counts
func TestAdvanceTailCellCollides(t *testing.T) {
	// 2x2 loop: moving into the current tail cell ends the game
	body := []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	e, _ := newTestEngine(body, HeadingRight, Cell{X: 0, Y: 0})

	if snap := e.Advance(); !snap.Terminal {
		t.Error("moving onto the pre-move tail should collide")
	}
}

// TestAdvanceEatsFood verifies growth and food regeneration
func TestAdvanceEatsFood(t *testing.T) {
	e, foods := newTestEngine(InitialSnake(), HeadingRight, Cell{X: 3, Y: 2}, Cell{X: 11, Y: 4})
	callsBefore := foods.Calls()

	snap := e.Advance()

	want := []Cell{{3, 2}, {2, 2}, {2, 1}, {2, 0}}
	if !reflect.DeepEqual(snap.Snake, want) {
		t.Errorf("Snake = %v, want %v", snap.Snake, want)
	}
	if foods.Calls() != callsBefore+1 {
		t.Errorf("food source called %d times, want 1", foods.Calls()-callsBefore)
	}
	if snap.Food != (Cell{11, 4}) {
		t.Errorf("Food = %v, want (11,4)", snap.Food)
	}

	// Next step drops the tail again
	snap = e.Advance()
	if len(snap.Snake) != 4 {
		t.Errorf("length after next step = %d, want 4", len(snap.Snake))
	}
}

// TestAdvanceFoodMayRespawnInPlace verifies no distinctness is enforced
func TestAdvanceFoodMayRespawnInPlace(t *testing.T) {
	e, _ := newTestEngine(InitialSnake(), HeadingRight, Cell{X: 3, Y: 2}, Cell{X: 3, Y: 2})
	snap := e.Advance()
	if snap.Food != (Cell{3, 2}) {
		t.Errorf("Food = %v, want (3,2) under the head", snap.Food)
	}
}

// TestAdvanceTerminalIsNoop verifies a finished game does not move
func TestAdvanceTerminalIsNoop(t *testing.T) {
	e, foods := newTestEngine([]Cell{{14, 0}}, HeadingRight, Cell{X: 9, Y: 9})
	first := e.Advance()
	calls := foods.Calls()

	for i := 0; i < 3; i++ {
		snap := e.Advance()
		if !reflect.DeepEqual(snap, first) {
			t.Fatalf("advance %d changed terminal state: %+v", i, snap)
		}
	}
	if foods.Calls() != calls {
		t.Error("food regenerated after game over")
	}
}

// TestAdvanceDeterministic verifies same state and heading give the same result
func TestAdvanceDeterministic(t *testing.T) {
	body := []Cell{{4, 4}, {4, 5}, {4, 6}}
	for _, h := range []Heading{HeadingUp, HeadingLeft, HeadingRight} {
		a, _ := newTestEngine(body, h, Cell{X: 0, Y: 0})
		b, _ := newTestEngine(body, h, Cell{X: 0, Y: 0})
		if !reflect.DeepEqual(a.Advance(), b.Advance()) {
			t.Errorf("heading %v: advances diverged", h)
		}
	}
}

// TestReset verifies the initial layout returns after play and game over
func TestReset(t *testing.T) {
	e := NewEngine(DefaultGrid(), NewFixedFood(Cell{X: 5, Y: 5}, Cell{X: 6, Y: 6}))

	e.SetHeading(HeadingDown)
	for i := 0; i < 20 && !e.Terminal(); i++ {
		e.Advance()
	}
	if !e.Terminal() {
		t.Fatal("expected the snake to reach the bottom wall")
	}

	e.Reset()
	snap := e.Snapshot()

	want := []Cell{{2, 2}, {2, 1}, {2, 0}}
	if !reflect.DeepEqual(snap.Snake, want) {
		t.Errorf("Snake = %v, want %v", snap.Snake, want)
	}
	if snap.Heading != HeadingRight || snap.Terminal || snap.Tick != 0 {
		t.Errorf("unexpected reset state: %+v", snap)
	}
	if snap.Food != (Cell{6, 6}) {
		t.Errorf("Food = %v, want fresh draw (6,6)", snap.Food)
	}
}

// TestSnapshotIsCopy verifies callers cannot mutate engine state
func TestSnapshotIsCopy(t *testing.T) {
	e := NewEngine(DefaultGrid(), NewFixedFood(Cell{X: 9, Y: 9}))
	snap := e.Snapshot()
	snap.Snake[0] = Cell{X: 99, Y: 99}

	if e.Snapshot().Head() != (Cell{2, 2}) {
		t.Error("snapshot aliases engine state")
	}
}

// TestRandomFoodInBounds verifies draws stay inside the grid and repeat per seed
func TestRandomFoodInBounds(t *testing.T) {
	g := DefaultGrid()
	a := NewRandomFood(1234)
	b := NewRandomFood(1234)

	for i := 0; i < 500; i++ {
		ca, cb := a.Next(g), b.Next(g)
		if !g.Contains(ca) {
			t.Fatalf("draw %d out of bounds: %v", i, ca)
		}
		if ca != cb {
			t.Fatalf("draw %d differs for same seed: %v vs %v", i, ca, cb)
		}
	}
}
