// Package errors provides structured reporting for panics recovered during
// signal dispatch.
//
// By default no handler is installed and a panicking handler propagates out
// of Emit, which is the right behavior for plain library use. Framework
// integrations that must keep dispatching after a bad handler install a
// Handler; Emit then recovers around each handler invocation, reports a
// DispatchPanic, and continues the pass.
package errors

import (
	"fmt"
	"time"
)

// DispatchPanic represents a panic recovered from a connected handler.
type DispatchPanic struct {
	// Op is the operation that panicked (e.g., "signal.Emit").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *DispatchPanic) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives panics recovered during dispatch.
type Handler interface {
	HandlePanic(err *DispatchPanic)
}
