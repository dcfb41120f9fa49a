// Package signal provides lifetime-safe, in-process signal/slot connections.
//
// A Signal is an event source parameterized by its payload type. Receivers
// are ordinary structs that embed [Connectable]; connecting a receiver wires
// bookkeeping in both directions, so tearing down either side cleanly
// detaches the other. A signal never invokes a handler on a disposed
// receiver, and a disposed signal never leaves a stale entry behind in a
// receiver.
//
// # Connecting
//
// Handlers are method expressions, which keeps the receiver binding explicit
// and lets connections be re-pointed at a copied receiver later:
//
//	type Button struct {
//	    signal.Connectable
//	    Label string
//	}
//
//	func (b *Button) HandlePress(signal.Void) {
//	    fmt.Println(b.Label, "pressed")
//	}
//
//	var onClick signal.Signal[signal.Void]
//	signal.Connect(&onClick, button, (*Button).HandlePress)
//	onClick.Emit(signal.Void{})
//
// Dispatch is synchronous and runs in registration order. The method value
// onClick.Emit is an ordinary func value and can be passed anywhere a
// callback is expected.
//
// # Lifetimes
//
// Go has no destructors, so teardown is explicit: call Dispose (or
// DisconnectAll) on whichever side is going away. Disposing a receiver
// removes every connection targeting it from every signal; disposing a
// signal removes it from every receiver it was connected to. Both are
// idempotent. Likewise there are no copy constructors: after copying a
// receiver-bearing value, call [Duplicate] to mirror the source's
// connections onto the copy, and use [Signal.Clone] to copy a signal
// together with its subscriber list.
//
// # Dispatch semantics
//
// Emit operates on a snapshot of the connection list. A connection added
// from inside a handler is not invoked during the pass that added it; a
// connection removed from inside a handler is skipped if its turn has not
// come yet.
//
// Signals and receivers are NOT thread-safe. All connection and dispatch
// activity for a given signal or receiver must happen on one logical thread
// of control, the same rule the drift framework applies to its UI thread.
package signal
