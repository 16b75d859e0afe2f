package remote

import "github.com/lixenwraith/quadsnake/engine"

// Client frame types
const (
	TypeTouch   = "touch"
	TypeSteer   = "steer"
	TypeRestart = "restart"
)

// Server frame types
const (
	TypeHello = "hello"
	TypeState = "state"
)

// ClientMsg is any frame sent by the touch pad page
type ClientMsg struct {
	Type string `json:"type"`

	// touch: point and viewport in CSS pixels
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// steer
	Heading engine.Heading `json:"heading"`
}

// HelloMsg is the first frame on a new connection
type HelloMsg struct {
	Type     string      `json:"type"`
	Session  string      `json:"session"`
	Grid     engine.Grid `json:"grid"`
	CellSize int         `json:"cell_size"`
}

// StateMsg carries one snapshot
type StateMsg struct {
	Type     string          `json:"type"`
	Snapshot engine.Snapshot `json:"snapshot"`
}
