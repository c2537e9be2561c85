// Package observer implements a single-slot "overwrite" channel: unlike a
// buffered channel, pushing a new value discards any value not yet
// received rather than blocking the sender. This backs the picker's
// Restart handoff (driver.go), where a late-arriving injector handle from
// a discarded matcher session must never block, and only the most recent
// handoff matters.
package observer

import "sync"

type state[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	value  T
	has    bool
	active bool
}

// Notifier is the push side of a single-slot channel.
type Notifier[T any] struct {
	s *state[T]
}

// Observer is the receive side of a single-slot channel. Observers may be
// cloned (via the zero-cost struct copy) since all share the same
// underlying state.
type Observer[T any] struct {
	s *state[T]
}

// New returns an empty channel.
func New[T any]() (Notifier[T], Observer[T]) {
	s := &state[T]{active: true}
	s.cond = sync.NewCond(&s.mu)
	return Notifier[T]{s: s}, Observer[T]{s: s}
}

// Occupied returns a channel pre-loaded with msg.
func Occupied[T any](msg T) (Notifier[T], Observer[T]) {
	n, o := New[T]()
	n.s.value = msg
	n.s.has = true
	return n, o
}

// Push overwrites any value currently waiting in the channel and wakes one
// waiting receiver. ok is false if Close has already been called on this
// channel's Notifier; msg is then dropped.
func (n Notifier[T]) Push(msg T) (ok bool) {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	if !n.s.active {
		return false
	}
	n.s.value = msg
	n.s.has = true
	n.s.cond.Signal()
	return true
}

// Close marks the channel disconnected and wakes every blocked receiver.
// Call this when the notifier's owner is done sending, mirroring the Rust
// source's Drop impl for Notifier.
func (n Notifier[T]) Close() {
	n.s.mu.Lock()
	n.s.active = false
	n.s.cond.Broadcast()
	n.s.mu.Unlock()
}

// Recv blocks until a message is available or the channel is closed with
// no pending message, in which case ok is false.
func (o Observer[T]) Recv() (msg T, ok bool) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	for {
		if o.s.has {
			o.s.has = false
			v := o.s.value
			var zero T
			o.s.value = zero
			return v, true
		}
		if !o.s.active {
			var zero T
			return zero, false
		}
		o.s.cond.Wait()
	}
}

// TryRecv returns immediately: ok is false and disconnected reports
// whether that's because the channel has no sender left, as opposed to
// simply being empty right now.
func (o Observer[T]) TryRecv() (msg T, ok bool, disconnected bool) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if o.s.has {
		o.s.has = false
		v := o.s.value
		var zero T
		o.s.value = zero
		return v, true, false
	}
	var zero T
	return zero, false, !o.s.active
}
