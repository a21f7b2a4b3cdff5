// Package keycomb tracks pressed keys and recognizes registered key
// combinations.
package keycomb

import (
	"github.com/tinyrange/kvmio/internal/assert"
	"github.com/tinyrange/kvmio/internal/rawinput"
)

// Tracker keeps the set of held scan codes and the ordered sequence of keys
// pressed since the current combination started.
type Tracker struct {
	pressed map[uint32]rawinput.KeyStatus
	seq     []rawinput.KeyboardInput
}

func NewTracker() *Tracker {
	return &Tracker{pressed: make(map[uint32]rawinput.KeyStatus)}
}

// Update applies a keyboard event. It returns true when in is a new press,
// that is a press of a key that was not already held. Repeats return false
// and leave the tracker unchanged.
//
// A release pops the sequence only when it matches the most recent press
// by virtual key. Any other release abandons the combination and clears
// the whole sequence.
func (t *Tracker) Update(in rawinput.KeyboardInput) bool {
	if in.Status == rawinput.Pressed {
		if _, held := t.pressed[in.MakeCode]; held {
			return false
		}
		t.pressed[in.MakeCode] = rawinput.Pressed
		t.seq = append(t.seq, in)
		return true
	}

	_, held := t.pressed[in.MakeCode]
	if !assert.That(held, "release of make code %#x that is not pressed", in.MakeCode) {
		return false
	}
	delete(t.pressed, in.MakeCode)

	if n := len(t.seq); n > 0 && t.seq[n-1].VirtualKey == in.VirtualKey {
		t.seq = t.seq[:n-1]
	} else {
		t.seq = t.seq[:0]
	}
	return false
}

// Sequence returns a copy of the current combination sequence.
func (t *Tracker) Sequence() []rawinput.KeyboardInput {
	return append([]rawinput.KeyboardInput(nil), t.seq...)
}

// IsPressed reports whether makeCode is held.
func (t *Tracker) IsPressed(makeCode uint32) bool {
	return t.pressed[makeCode] == rawinput.Pressed
}

// Held returns the number of keys held.
func (t *Tracker) Held() int {
	return len(t.pressed)
}

// Reset forgets every held key and the current sequence.
func (t *Tracker) Reset() {
	clear(t.pressed)
	t.seq = t.seq[:0]
}
