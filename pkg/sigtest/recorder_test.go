package sigtest

import (
	"testing"

	"github.com/go-drift/signals/pkg/signal"
)

func TestRecorderRecordsInOrder(t *testing.T) {
	s := signal.New[string]()
	rec := NewRecorder[string]()
	signal.Connect(s, rec, (*Recorder[string]).Handle)

	s.Emit("one")
	s.Emit("two")

	if rec.Calls() != 2 {
		t.Fatalf("expected 2 calls, got %d", rec.Calls())
	}
	if got := rec.Values(); got[0] != "one" || got[1] != "two" {
		t.Errorf("unexpected values %v", got)
	}
}

func TestRecorderReset(t *testing.T) {
	s := signal.New[int]()
	rec := NewRecorder[int]()
	signal.Connect(s, rec, (*Recorder[int]).Handle)

	s.Emit(1)
	rec.Reset()

	if rec.Calls() != 0 {
		t.Errorf("expected empty log after reset, got %v", rec.Values())
	}

	// Reset leaves the connection alive.
	s.Emit(2)
	if rec.Calls() != 1 {
		t.Errorf("expected recording to continue after reset, got %d calls", rec.Calls())
	}
}

func TestRecorderDispose(t *testing.T) {
	s := signal.New[int]()
	rec := NewRecorder[int]()
	signal.Connect(s, rec, (*Recorder[int]).Handle)

	rec.Dispose()
	s.Emit(1)

	if rec.Calls() != 0 {
		t.Errorf("expected no recording after dispose, got %d calls", rec.Calls())
	}
}
