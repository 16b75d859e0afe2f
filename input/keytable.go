package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/quadsnake/engine"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Heading    engine.Heading
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

func steer(h engine.Heading) KeyEntry {
	return KeyEntry{IntentType: IntentSteer, Heading: h}
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     steer(engine.HeadingUp),
			tcell.KeyDown:   steer(engine.HeadingDown),
			tcell.KeyLeft:   steer(engine.HeadingLeft),
			tcell.KeyRight:  steer(engine.HeadingRight),
			tcell.KeyEnter:  {IntentType: IntentRestart},
			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			// vi
			'k': steer(engine.HeadingUp),
			'j': steer(engine.HeadingDown),
			'h': steer(engine.HeadingLeft),
			'l': steer(engine.HeadingRight),
			// wasd
			'w': steer(engine.HeadingUp),
			's': steer(engine.HeadingDown),
			'a': steer(engine.HeadingLeft),
			'd': steer(engine.HeadingRight),

			'r': {IntentType: IntentRestart},
			' ': {IntentType: IntentRestart},
			'q': {IntentType: IntentQuit},
		},
	}
}

// Lookup resolves a key event to an entry
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		entry, ok := kt.Runes[r]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[key]
	return entry, ok
}
