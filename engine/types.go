package engine

import "fmt"

// Cell is an integer coordinate on the board
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is the board size in cells
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether c lies within [0,Width) x [0,Height)
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Heading is the snake's direction of travel
type Heading uint8

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

var headingNames = [...]string{
	HeadingUp:    "UP",
	HeadingDown:  "DOWN",
	HeadingLeft:  "LEFT",
	HeadingRight: "RIGHT",
}

// Valid reports whether h is one of the four cardinal headings
func (h Heading) Valid() bool {
	return h <= HeadingRight
}

func (h Heading) String() string {
	if !h.Valid() {
		return "Unknown"
	}
	return headingNames[h]
}

// Opposite returns the reverse heading
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	}
	return h
}

// IsOpposite reports whether other points directly against h
func (h Heading) IsOpposite(other Heading) bool {
	return h.Valid() && other.Valid() && h.Opposite() == other
}

// Delta returns the unit step for h; y grows downward
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	}
	return 0, 0
}

// MarshalText encodes the heading as UP, DOWN, LEFT or RIGHT
func (h Heading) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("invalid heading %d", uint8(h))
	}
	return []byte(headingNames[h]), nil
}

// UnmarshalText decodes UP, DOWN, LEFT or RIGHT
func (h *Heading) UnmarshalText(text []byte) error {
	parsed, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHeading maps the text form back to a Heading
func ParseHeading(s string) (Heading, error) {
	for i, name := range headingNames {
		if name == s {
			return Heading(i), nil
		}
	}
	return 0, fmt.Errorf("unknown heading %q", s)
}

// NextHead returns head shifted one cell along h
func NextHead(head Cell, h Heading) Cell {
	dx, dy := h.Delta()
	return Cell{X: head.X + dx, Y: head.Y + dy}
}

// Collides reports whether c is off the grid or on any segment of body.
// Bounds are checked first.
func Collides(g Grid, body []Cell, c Cell) bool {
	if !g.Contains(c) {
		return true
	}
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}

// Snapshot is a read-only copy of the game state for presentation
type Snapshot struct {
	Grid     Grid    `json:"grid"`
	Snake    []Cell  `json:"snake"`
	Food     Cell    `json:"food"`
	Heading  Heading `json:"heading"`
	Terminal bool    `json:"terminal"`
	Tick     uint64  `json:"tick"`
}

// Head returns the first snake segment
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}
