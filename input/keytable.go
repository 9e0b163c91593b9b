package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'd': IntentDebug,
			'h': IntentLeft,
			'l': IntentRight,
		},
	}
}

// Resolve returns the intent bound to a key event
func (kt *KeyTable) Resolve(ev *tcell.EventKey) IntentType {
	return kt.ResolveKey(ev.Key(), ev.Rune())
}

// ResolveKey looks up a key code, or the rune when key is tcell.KeyRune
func (kt *KeyTable) ResolveKey(key tcell.Key, r rune) IntentType {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
