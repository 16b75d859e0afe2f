package input

import "github.com/lixenwraith/quadsnake/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit    // q, Esc, Ctrl+C
	IntentSteer   // arrows, hjkl, wasd
	IntentTap     // primary click / touch, carries the quadrant heading
	IntentRestart // r, Enter, Space
	IntentResize  // terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentSteer:
		return "Steer"
	case IntentTap:
		return "Tap"
	case IntentRestart:
		return "Restart"
	case IntentResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Intent is a parsed user action
type Intent struct {
	Type    IntentType
	Heading engine.Heading // IntentSteer, IntentTap
}
