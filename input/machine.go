package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine turns tcell events into intents.
// It tracks screen size for quadrant mapping and the mouse button state
// so that only a fresh press counts as a tap.
type Machine struct {
	keyTable *KeyTable

	width, height int
	prevButtons   tcell.ButtonMask
}

// NewMachine creates a machine for a screen of the given size
func NewMachine(width, height int) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		width:    width,
		height:   height,
	}
}

// Size returns the last known screen size
func (m *Machine) Size() (int, int) {
	return m.width, m.height
}

// Translate parses one event
func (m *Machine) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := m.keyTable.Lookup(ev.Key(), ev.Rune())
		if !ok {
			return Intent{}
		}
		return Intent{Type: entry.IntentType, Heading: entry.Heading}

	case *tcell.EventMouse:
		return m.processMouse(ev)

	case *tcell.EventResize:
		m.width, m.height = ev.Size()
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.prevButtons&tcell.Button1 == 0
	m.prevButtons = buttons

	if !pressed || m.width <= 0 || m.height <= 0 {
		return Intent{}
	}

	x, y := ev.Position()
	h := QuadrantHeading(float64(x), float64(y), float64(m.width), float64(m.height))
	return Intent{Type: IntentTap, Heading: h}
}
