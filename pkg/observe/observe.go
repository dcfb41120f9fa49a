// Package observe provides closure-style change notification on top of the
// signal package.
//
// Notifier and Observable cover the common controller pattern: listeners are
// plain funcs registered with AddListener, which returns an unsubscribe
// function. Internally each listener is its own receiver, so the listenable
// types share the signal package's lifetime model instead of keeping a
// separate registry.
//
// Like the signal package, none of these types are thread-safe.
package observe

import (
	"github.com/go-drift/signals/pkg/signal"
)

// Listenable is anything that can notify argumentless listeners of changes.
type Listenable interface {
	// AddListener registers fn and returns an unsubscribe function.
	AddListener(fn func()) func()
}

// Disposable releases resources when no longer needed.
type Disposable interface {
	Dispose()
}

// listenerSlot adapts a plain callback to the signal receiver model, giving
// each registered listener its own lifetime-tracked connection.
type listenerSlot[T any] struct {
	signal.Connectable
	fn func(T)
}

func (s *listenerSlot[T]) handle(v T) { s.fn(v) }
