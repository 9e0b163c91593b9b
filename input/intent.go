package input

import "github.com/lixenwraith/pong/game"

// IntentType discriminates what a key press asks for
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit  // Esc, q, Ctrl+C
	IntentDebug // d: dump ball vector and metrics to the log

	// Paddle steering
	IntentLeft  // Left arrow, h
	IntentRight // Right arrow, l
)

var intentName = map[IntentType]string{
	IntentNone:  "none",
	IntentQuit:  "quit",
	IntentDebug: "debug",
	IntentLeft:  "left",
	IntentRight: "right",
}

func (i IntentType) String() string {
	return intentName[i]
}

// Key maps steering intents to the engine key they hold; other intents map to game.KeyNone
func (i IntentType) Key() game.Key {
	switch i {
	case IntentLeft:
		return game.KeyLeft
	case IntentRight:
		return game.KeyRight
	default:
		return game.KeyNone
	}
}
