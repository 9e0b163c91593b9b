package input

import (
	"time"

	"github.com/lixenwraith/pong/game"
)

// hold is the press history of one steering key
type hold struct {
	active   bool
	repeated bool
	last     time.Time
}

// Tracker turns a press-only key stream into down/up edges
// Terminals report a held key as an initial press followed by auto-repeats, and never report
// the release; a key counts as released once its presses stop arriving
type Tracker struct {
	firstHold  time.Duration
	repeatHold time.Duration
	keys       [3]hold // indexed by game.Key
}

// NewTracker creates a tracker
// firstHold must cover the terminal's auto-repeat delay; repeatHold the gap between repeats
func NewTracker(firstHold, repeatHold time.Duration) *Tracker {
	return &Tracker{firstHold: firstHold, repeatHold: repeatHold}
}

// Held reports whether k is currently considered down
func (t *Tracker) Held(k game.Key) bool {
	if !steering(k) {
		return false
	}
	return t.keys[k].active
}

// Press records a press of k at now and appends the resulting edges to dst
// Pressing the opposite direction releases the held one, since terminals only repeat the last key
func (t *Tracker) Press(dst []game.Edge, k game.Key, now time.Time) []game.Edge {
	if !steering(k) {
		return dst
	}

	if o := opposite(k); t.keys[o].active {
		t.keys[o] = hold{}
		dst = append(dst, game.Up(o))
	}

	h := &t.keys[k]
	if h.active {
		h.repeated = true
		h.last = now
		return dst
	}

	*h = hold{active: true, last: now}
	return append(dst, game.Down(k))
}

// Expire appends a release edge for every held key whose presses have stopped
func (t *Tracker) Expire(dst []game.Edge, now time.Time) []game.Edge {
	for _, k := range [...]game.Key{game.KeyLeft, game.KeyRight} {
		h := &t.keys[k]
		if !h.active {
			continue
		}
		window := t.firstHold
		if h.repeated {
			window = t.repeatHold
		}
		if now.Sub(h.last) > window {
			*h = hold{}
			dst = append(dst, game.Up(k))
		}
	}
	return dst
}

// ReleaseAll appends a release edge for every held key
func (t *Tracker) ReleaseAll(dst []game.Edge) []game.Edge {
	for _, k := range [...]game.Key{game.KeyLeft, game.KeyRight} {
		if t.keys[k].active {
			t.keys[k] = hold{}
			dst = append(dst, game.Up(k))
		}
	}
	return dst
}

func steering(k game.Key) bool {
	return k == game.KeyLeft || k == game.KeyRight
}

func opposite(k game.Key) game.Key {
	if k == game.KeyLeft {
		return game.KeyRight
	}
	return game.KeyLeft
}
