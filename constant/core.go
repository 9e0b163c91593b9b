package constant

import "time"

// Game Loop Timing
const (
	// FramesPerSecond is the default simulation and render rate
	FramesPerSecond = 60

	// FrameUpdateInterval is the tick interval at FramesPerSecond (~16.6ms)
	FrameUpdateInterval = time.Second / FramesPerSecond

	// EventQueueSize is the buffer between the input poller and the tick loop
	EventQueueSize = 256
)

// Terminal key release synthesis
// Terminals only report presses; a held key is seen as auto-repeated presses
const (
	// KeyFirstHold covers the auto-repeat delay after the initial press
	KeyFirstHold = 550 * time.Millisecond

	// KeyRepeatHold is the gap after which a repeating key counts as released
	KeyRepeatHold = 120 * time.Millisecond
)

// Version and window identity
const (
	Version   = "0.1"
	GameTitle = "Pong v" + Version
)
