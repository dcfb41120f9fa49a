package observe

import (
	"github.com/go-drift/signals/pkg/signal"
)

// Notifier notifies argumentless listeners when something changed. It is
// the building block behind controllers that expose AddListener.
//
//	n := observe.NewNotifier()
//	unsub := n.AddListener(func() { fmt.Println("changed") })
//	n.NotifyListeners()
//	unsub()
//
// Always call Dispose when done so listeners stop being invoked.
type Notifier struct {
	changed signal.Signal[signal.Void]
}

// NewNotifier creates a new Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers fn to run on every NotifyListeners call, in
// registration order. Returns an unsubscribe function; calling it more than
// once is a no-op.
func (n *Notifier) AddListener(fn func()) func() {
	slot := &listenerSlot[signal.Void]{fn: func(signal.Void) { fn() }}
	signal.Connect(&n.changed, slot, (*listenerSlot[signal.Void]).handle)
	return func() {
		n.changed.Disconnect(slot)
	}
}

// NotifyListeners invokes every registered listener.
func (n *Notifier) NotifyListeners() {
	n.changed.Emit(signal.Void{})
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return n.changed.ConnectionCount()
}

// Dispose removes all listeners.
func (n *Notifier) Dispose() {
	n.changed.Dispose()
}
