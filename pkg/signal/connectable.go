package signal

// Emitter is the type-erased view of a [Signal] that a receiver's
// Connectable tracks. Its method set is deliberately closed: only *Signal
// implements it, so all connection bookkeeping stays inside this package.
type Emitter interface {
	slotDisconnect(target *Connectable)
	slotDuplicate(oldTarget *Connectable, newRecv Receiver)
}

// Receiver is satisfied by any type that embeds [Connectable] by pointer.
// Passing a struct that does not embed Connectable is a compile error.
type Receiver interface {
	connectable() *Connectable
}

// Connectable tracks the signals currently connected to a receiver. Embed
// it in any struct that should act as a callback target:
//
//	type Button struct {
//	    signal.Connectable
//	    Label string
//	}
//
// The zero value is ready to use. Call Dispose before discarding the
// receiver so no signal keeps dispatching to it.
type Connectable struct {
	senders map[Emitter]struct{}
}

func (c *Connectable) connectable() *Connectable { return c }

// signalConnect records sender as holding at least one connection to this
// receiver. Idempotent per sender.
func (c *Connectable) signalConnect(sender Emitter) {
	if c.senders == nil {
		c.senders = make(map[Emitter]struct{})
	}
	c.senders[sender] = struct{}{}
}

// signalDisconnect drops the back reference to sender, if present.
func (c *Connectable) signalDisconnect(sender Emitter) {
	delete(c.senders, sender)
}

// DisconnectAll removes every connection targeting this receiver from every
// signal it is connected to, then clears the sender set. Idempotent.
func (c *Connectable) DisconnectAll() {
	for sender := range c.senders {
		sender.slotDisconnect(c)
	}
	clear(c.senders)
}

// Dispose tears down all of the receiver's connections. It is the teardown
// entry point; call it before the receiver goes out of use.
func (c *Connectable) Dispose() {
	c.DisconnectAll()
}

// SenderCount returns the number of distinct signals currently connected to
// this receiver.
func (c *Connectable) SenderCount() int {
	return len(c.senders)
}

// Duplicate mirrors every connection targeting src onto dst. For each signal
// connected to src, a new connection record with the same handler is
// appended for dst, and the signal is registered in dst's own sender set.
// src is left untouched; afterwards both receivers are independently
// subscribed.
//
// Call it right after copying a receiver-bearing value:
//
//	copy := *button
//	signal.Duplicate(button, &copy)
//
// Both arguments must be the same concrete receiver type, which the shared
// type parameter enforces at the call site. dst must be a fresh copy or a
// fresh receiver: a plain struct copy aliases the source's sender set, so
// Duplicate rebuilds dst's set from scratch rather than reusing it.
func Duplicate[R Receiver](src, dst R) {
	sc := src.connectable()
	dc := dst.connectable()
	if sc == dc {
		return
	}
	dc.senders = nil
	for sender := range sc.senders {
		sender.slotDuplicate(sc, dst)
		dc.signalConnect(sender)
	}
}
