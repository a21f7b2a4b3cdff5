// Package event implements ordered, synchronous observer lists.
//
// An Event is owned by a single goroutine: subscribing, unsubscribing and
// publishing must all happen on that goroutine. Handlers run inline during
// Publish, in subscription order.
package event

// ID identifies a subscription. IDs are never reused within an Event.
type ID uint64

type subscriber[T any] struct {
	id ID
	fn func(T)
}

// Event is a list of handlers for values of type T. The zero value is ready
// to use.
type Event[T any] struct {
	next ID
	subs []subscriber[T]
}

// Subscribe appends fn and returns its ID.
func (e *Event[T]) Subscribe(fn func(T)) ID {
	e.next++
	e.subs = append(e.subs, subscriber[T]{id: e.next, fn: fn})
	return e.next
}

// Unsubscribe removes the handler registered under id. It reports whether
// the handler was present.
func (e *Event[T]) Unsubscribe(id ID) bool {
	for i, s := range e.subs {
		if s.id == id {
			// Copy so a Publish in progress keeps iterating its own slice.
			subs := make([]subscriber[T], 0, len(e.subs)-1)
			subs = append(subs, e.subs[:i]...)
			e.subs = append(subs, e.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish calls every handler with v. Handlers subscribed during Publish are
// not called for v.
func (e *Event[T]) Publish(v T) {
	for _, s := range e.subs {
		s.fn(v)
	}
}

// Len returns the number of handlers.
func (e *Event[T]) Len() int {
	return len(e.subs)
}

// Clear removes every handler.
func (e *Event[T]) Clear() {
	e.subs = nil
}
