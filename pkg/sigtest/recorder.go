// Package sigtest provides test support for signal-based code: a recording
// receiver and a YAML-scripted scenario runner.
package sigtest

import (
	"github.com/go-drift/signals/pkg/signal"
)

// Recorder is a receiver that records every payload handed to it, in
// dispatch order. Connect its Handle method:
//
//	rec := sigtest.NewRecorder[string]()
//	signal.Connect(s, rec, (*sigtest.Recorder[string]).Handle)
type Recorder[T any] struct {
	signal.Connectable
	values []T
}

// NewRecorder creates an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Handle records v.
func (r *Recorder[T]) Handle(v T) {
	r.values = append(r.values, v)
}

// Values returns the recorded payloads in dispatch order.
func (r *Recorder[T]) Values() []T {
	return r.values
}

// Calls returns how many times Handle ran.
func (r *Recorder[T]) Calls() int {
	return len(r.values)
}

// Reset clears the recorded payloads without touching connections.
func (r *Recorder[T]) Reset() {
	r.values = nil
}
