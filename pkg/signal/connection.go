package signal

// connection is the type-erased record binding one receiver instance to one
// handler. Records are owned by the signal's connection list and are
// immutable once created, except for the removed mark used to keep
// in-flight Emit passes safe.
type connection[T any] interface {
	target() *Connectable
	invoke(v T)
	clone() connection[T]
	retarget(newRecv Receiver) (connection[T], bool)
	detach()
	live() bool
}

// conn binds a concrete receiver type to a method-expression handler. It is
// the only connection implementation; the interface above exists to erase R.
type conn[R Receiver, T any] struct {
	recv    R
	handler func(R, T)
	removed bool
}

func (c *conn[R, T]) target() *Connectable { return c.recv.connectable() }

func (c *conn[R, T]) invoke(v T) { c.handler(c.recv, v) }

// clone returns an independent record with the same receiver and handler,
// used when a signal is copied.
func (c *conn[R, T]) clone() connection[T] {
	return &conn[R, T]{recv: c.recv, handler: c.handler}
}

// retarget returns a record invoking the same handler on newRecv. The type
// assertion is the checked counterpart of a downcast: it only fails when
// newRecv is not the same concrete type the record was connected with.
func (c *conn[R, T]) retarget(newRecv Receiver) (connection[T], bool) {
	r, ok := newRecv.(R)
	if !ok {
		return nil, false
	}
	return &conn[R, T]{recv: r, handler: c.handler}, true
}

// detach marks the record as removed so an Emit pass already holding a
// snapshot skips it.
func (c *conn[R, T]) detach() { c.removed = true }

func (c *conn[R, T]) live() bool { return !c.removed }
