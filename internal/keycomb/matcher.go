package keycomb

import (
	"slices"
	"strings"

	"github.com/tinyrange/kvmio/internal/event"
	"github.com/tinyrange/kvmio/internal/rawinput"
)

// Combination is a registered ordered key sequence and the handlers that
// receive the matching keyboard inputs.
type Combination struct {
	keys []rawinput.VirtualKey
	ev   event.Event[[]rawinput.KeyboardInput]
}

// Keys returns the registered sequence.
func (c *Combination) Keys() []rawinput.VirtualKey {
	return slices.Clone(c.keys)
}

// Subscribe adds a handler called with the full matched sequence.
func (c *Combination) Subscribe(fn func([]rawinput.KeyboardInput)) event.ID {
	return c.ev.Subscribe(fn)
}

func (c *Combination) Unsubscribe(id event.ID) bool {
	return c.ev.Unsubscribe(id)
}

func (c *Combination) String() string {
	parts := make([]string, len(c.keys))
	for i, k := range c.keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, "+")
}

func (c *Combination) matches(seq []rawinput.KeyboardInput) bool {
	if len(c.keys) != len(seq) {
		return false
	}
	for i, in := range seq {
		if in.VirtualKey != c.keys[i] {
			return false
		}
	}
	return true
}

// Matcher holds combinations in registration order.
type Matcher struct {
	combos []*Combination
}

// Register adds a combination. Registrations live until Clear.
func (m *Matcher) Register(keys ...rawinput.VirtualKey) *Combination {
	c := &Combination{keys: slices.Clone(keys)}
	m.combos = append(m.combos, c)
	return c
}

// Match publishes seq to the first registered combination equal to it and
// reports whether one was found. Later registrations are not consulted.
func (m *Matcher) Match(seq []rawinput.KeyboardInput) bool {
	for _, c := range m.combos {
		if c.matches(seq) {
			c.ev.Publish(slices.Clone(seq))
			return true
		}
	}
	return false
}

// Len returns the number of registered combinations.
func (m *Matcher) Len() int {
	return len(m.combos)
}

// Clear drops every registration.
func (m *Matcher) Clear() {
	for _, c := range m.combos {
		c.ev.Clear()
	}
	m.combos = nil
}
