package observe

import (
	"github.com/go-drift/signals/pkg/signal"
)

// Observable holds a value and notifies listeners whenever it is set.
//
//	counter := observe.NewObservable(0)
//	unsub := counter.AddListener(func(v int) { fmt.Println("now", v) })
//	counter.Set(1)
//	unsub()
type Observable[T any] struct {
	value   T
	eq      func(a, b T) bool
	changed signal.Signal[T]
}

// NewObservable creates an Observable with the given initial value. Setting
// the initial value does not notify anyone.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an Observable that skips notification
// when eq reports the stored and incoming values equal. Useful for large
// values where listeners only care about part of the state.
func NewObservableWithEquality[T any](initial T, eq func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, eq: eq}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	return o.value
}

// Set stores v and notifies every listener with the new value. Without an
// equality function, listeners are notified on every Set, including one
// that stores an equal value.
func (o *Observable[T]) Set(v T) {
	if o.eq != nil && o.eq(o.value, v) {
		o.value = v
		return
	}
	o.value = v
	o.changed.Emit(v)
}

// Update applies fn to the current value and stores the result, notifying
// listeners.
func (o *Observable[T]) Update(fn func(T) T) {
	o.Set(fn(o.value))
}

// AddListener registers fn to run with the new value on every Set, in
// registration order. Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	slot := &listenerSlot[T]{fn: fn}
	signal.Connect(&o.changed, slot, (*listenerSlot[T]).handle)
	return func() {
		o.changed.Disconnect(slot)
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	return o.changed.ConnectionCount()
}

// Dispose removes all listeners. The value itself stays readable.
func (o *Observable[T]) Dispose() {
	o.changed.Dispose()
}
