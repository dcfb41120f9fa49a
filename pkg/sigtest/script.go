package sigtest

import (
	"fmt"
	"os"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/signals/pkg/signal"
)

// Script is a declarative connection/dispatch scenario. Scripts are loaded
// from YAML fixtures and replayed against string-payload signals and
// Recorder receivers, both created lazily on first mention:
//
//	- name: dispatch order
//	  steps:
//	    - connect: {signal: onClick, receiver: a}
//	    - connect: {signal: onClick, receiver: b}
//	    - emit: {signal: onClick, value: press}
//	  expect:
//	    a: [press]
//	    b: [press]
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`

	// Expect maps receiver names to the payload sequence each must have
	// recorded once all steps ran. Receivers not listed are not checked.
	Expect map[string][]string `yaml:"expect"`
	// ExpectConnections maps signal names to their final connection count.
	ExpectConnections map[string]int `yaml:"expectConnections"`
	// ExpectSenders maps receiver names to their final sender count.
	ExpectSenders map[string]int `yaml:"expectSenders"`
}

// Step is a single scripted action. Exactly one field must be set.
type Step struct {
	Connect    *Endpoint `yaml:"connect,omitempty"`
	Emit       *Emission `yaml:"emit,omitempty"`
	Disconnect *Endpoint `yaml:"disconnect,omitempty"`
	// DisposeReceiver tears down the named receiver.
	DisposeReceiver string `yaml:"disposeReceiver,omitempty"`
	// DisposeSignal tears down the named signal.
	DisposeSignal string `yaml:"disposeSignal,omitempty"`
	// CopyReceiver duplicates every connection of From onto a fresh
	// receiver named To. The copy starts with an empty log, so expectations
	// for To cover post-copy dispatches only.
	CopyReceiver *Rename `yaml:"copyReceiver,omitempty"`
	// CloneSignal copies the signal From, with its subscriber list, as To.
	CloneSignal *Rename `yaml:"cloneSignal,omitempty"`
}

// Endpoint names a signal/receiver pair.
type Endpoint struct {
	Signal   string `yaml:"signal"`
	Receiver string `yaml:"receiver"`
}

// Emission names a signal and the payload to emit on it.
type Emission struct {
	Signal string `yaml:"signal"`
	Value  string `yaml:"value"`
}

// Rename names a source and destination object.
type Rename struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LoadScripts reads a YAML fixture containing a list of scripts.
func LoadScripts(path string) ([]Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var scripts []Script
	if err := yaml.Unmarshal(data, &scripts); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return scripts, nil
}

// Run replays the script and checks its expectations against tb.
func (sc Script) Run(tb testing.TB) {
	tb.Helper()

	signals := map[string]*signal.Signal[string]{}
	recorders := map[string]*Recorder[string]{}

	sig := func(name string) *signal.Signal[string] {
		s, ok := signals[name]
		if !ok {
			s = signal.New[string]()
			signals[name] = s
		}
		return s
	}
	rec := func(name string) *Recorder[string] {
		r, ok := recorders[name]
		if !ok {
			r = NewRecorder[string]()
			recorders[name] = r
		}
		return r
	}

	for i, step := range sc.Steps {
		switch {
		case step.Connect != nil:
			signal.Connect(sig(step.Connect.Signal), rec(step.Connect.Receiver), (*Recorder[string]).Handle)
		case step.Emit != nil:
			sig(step.Emit.Signal).Emit(step.Emit.Value)
		case step.Disconnect != nil:
			sig(step.Disconnect.Signal).Disconnect(rec(step.Disconnect.Receiver))
		case step.DisposeReceiver != "":
			rec(step.DisposeReceiver).Dispose()
		case step.DisposeSignal != "":
			sig(step.DisposeSignal).Dispose()
		case step.CopyReceiver != nil:
			signal.Duplicate(rec(step.CopyReceiver.From), rec(step.CopyReceiver.To))
		case step.CloneSignal != nil:
			signals[step.CloneSignal.To] = sig(step.CloneSignal.From).Clone()
		default:
			tb.Fatalf("script %q: step %d has no action", sc.Name, i)
		}
	}

	for name, want := range sc.Expect {
		got := rec(name).Values()
		if !slices.Equal(got, want) {
			tb.Errorf("script %q: receiver %q recorded %v, want %v", sc.Name, name, got, want)
		}
	}
	for name, want := range sc.ExpectConnections {
		if got := sig(name).ConnectionCount(); got != want {
			tb.Errorf("script %q: signal %q has %d connections, want %d", sc.Name, name, got, want)
		}
	}
	for name, want := range sc.ExpectSenders {
		if got := rec(name).SenderCount(); got != want {
			tb.Errorf("script %q: receiver %q has %d senders, want %d", sc.Name, name, got, want)
		}
	}
}
