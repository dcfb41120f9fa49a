package signal

import (
	"github.com/go-drift/signals/pkg/errors"
)

// Void is the payload type for signals that carry no arguments.
type Void struct{}

// Signal is a synchronous event source. Connected handlers are invoked in
// registration order on every Emit. The zero value is ready to use:
//
//	var onClick signal.Signal[signal.Void]
//
// Signals are NOT thread-safe; see the package documentation.
type Signal[T any] struct {
	conns []connection[T]
}

// New creates a new Signal. Provided for symmetry with other drift
// controllers; the zero value works just as well.
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Connect binds recv's handler to s. The handler is a method expression, so
// the same method can later be re-bound to a copy of the receiver:
//
//	signal.Connect(&onClick, button, (*Button).HandlePress)
//
// Connecting the same receiver and handler more than once produces
// independent connections; Emit invokes the handler once per connection.
// Connect is a free function because methods cannot introduce the receiver
// type parameter.
func Connect[T any, R Receiver](s *Signal[T], recv R, handler func(R, T)) {
	s.conns = append(s.conns, &conn[R, T]{recv: recv, handler: handler})
	recv.connectable().signalConnect(s)
}

// Emit invokes every connected handler in registration order, passing v.
// With no connections it is a no-op.
//
// Emit iterates a snapshot of the connection list: handlers that connect
// new receivers during the pass do not see them invoked until the next
// Emit, and handlers that disconnect receivers prevent any not-yet-invoked
// connection to them from running.
//
// A panicking handler propagates the panic to the Emit caller unless a
// handler is installed via the errors package, in which case the panic is
// reported and the pass continues with the next connection.
func (s *Signal[T]) Emit(v T) {
	if len(s.conns) == 0 {
		return
	}
	snapshot := make([]connection[T], len(s.conns))
	copy(snapshot, s.conns)
	for _, c := range snapshot {
		if !c.live() {
			continue
		}
		s.dispatch(c, v)
	}
}

func (s *Signal[T]) dispatch(c connection[T], v T) {
	if !errors.Installed() {
		c.invoke(v)
		return
	}
	defer errors.Recover("signal.Emit")
	c.invoke(v)
}

// Disconnect removes the first connection, in registration order, that
// targets recv. Later connections to the same receiver are untouched; the
// receiver's back reference to s is dropped only when its last connection
// goes away. Disconnecting a receiver with no connection is a no-op.
func (s *Signal[T]) Disconnect(recv Receiver) {
	target := recv.connectable()
	for i, c := range s.conns {
		if c.target() != target {
			continue
		}
		c.detach()
		s.conns = append(s.conns[:i], s.conns[i+1:]...)
		if s.countOf(target) == 0 {
			target.signalDisconnect(s)
		}
		return
	}
}

// DisconnectAll removes every connection and drops this signal from every
// target receiver's sender set. Idempotent.
func (s *Signal[T]) DisconnectAll() {
	for _, c := range s.conns {
		c.target().signalDisconnect(s)
		c.detach()
	}
	s.conns = nil
}

// Dispose tears down all of the signal's connections. Call it before the
// signal goes out of use.
func (s *Signal[T]) Dispose() {
	s.DisconnectAll()
}

// Clone returns an independent signal with the same connections in the same
// order. Every target receiver ends up subscribed to both the original and
// the clone; disposing one does not affect the other.
func (s *Signal[T]) Clone() *Signal[T] {
	out := New[T]()
	for _, c := range s.conns {
		c.target().signalConnect(out)
		out.conns = append(out.conns, c.clone())
	}
	return out
}

// ConnectionCount returns the total number of connections.
func (s *Signal[T]) ConnectionCount() int {
	return len(s.conns)
}

// ConnectionsTo returns the number of connections targeting recv.
func (s *Signal[T]) ConnectionsTo(recv Receiver) int {
	return s.countOf(recv.connectable())
}

func (s *Signal[T]) countOf(target *Connectable) int {
	n := 0
	for _, c := range s.conns {
		if c.target() == target {
			n++
		}
	}
	return n
}

// slotDisconnect removes every connection targeting the receiver. The
// receiver clears its own sender set, so no back reference is touched here.
func (s *Signal[T]) slotDisconnect(target *Connectable) {
	kept := make([]connection[T], 0, len(s.conns))
	for _, c := range s.conns {
		if c.target() == target {
			c.detach()
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		s.conns = nil
		return
	}
	s.conns = kept
}

// slotDuplicate appends a retargeted copy of every connection aimed at
// oldTarget. Records whose concrete receiver type does not match newRecv
// are left alone; that only happens when Duplicate is misused across
// different receiver types.
func (s *Signal[T]) slotDuplicate(oldTarget *Connectable, newRecv Receiver) {
	existing := s.conns
	for _, c := range existing {
		if c.target() != oldTarget {
			continue
		}
		if dup, ok := c.retarget(newRecv); ok {
			s.conns = append(s.conns, dup)
		}
	}
}
