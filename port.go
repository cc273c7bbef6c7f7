// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// receiver is the consumer-side capability set of a connection. A
// constant binding implements it without a ring.
type receiver[T any] interface {
	receive() (T, error)
	peek() bool
	full() bool
}

// sender is the producer-side capability set of a connection.
type sender[T any] interface {
	send(elem *T) error
	full() bool
}

// InPort is the receiver endpoint a component exposes. Its lifetime
// matches the owning component's; the connection attached to it must not
// outlive either endpoint.
//
// Receive and Peek may be called concurrently with respect to Send on
// the connected output port — and only with respect to that. One
// consumer at a time.
type InPort[T any] struct {
	owner *Component
	conn  receiver[T]
}

// NewInPort creates an input port owned by the given component. The port
// registers itself so the reactor polls it for pending data. A nil owner
// is allowed: the port still receives, but data arriving on it wakes
// nobody (useful for probes driven from outside the reactor).
func NewInPort[T any](owner *Component) *InPort[T] {
	p := &InPort[T]{owner: owner}
	owner.attach(p)
	return p
}

// Receive takes the next element from the port's connection.
// Returns ErrWouldBlock when the connection is empty or the port is not
// connected.
func (p *InPort[T]) Receive() (T, error) {
	if p.conn == nil {
		var zero T
		return zero, ErrWouldBlock
	}
	return p.conn.receive()
}

// Peek reports whether an element is available for receiving.
// False when not connected.
func (p *InPort[T]) Peek() bool {
	return p.conn != nil && p.conn.peek()
}

// Full reports whether the port's connection is full.
// False when not connected.
func (p *InPort[T]) Full() bool {
	return p.conn != nil && p.conn.full()
}

// Request wakes the owning component. Part of the connection send path;
// no-op on an ownerless port.
func (p *InPort[T]) Request() {
	if p.owner != nil {
		p.owner.Request()
	}
}

func (p *InPort[T]) connect(c receiver[T]) {
	if p.conn != nil {
		panic("flow: input port already connected")
	}
	p.conn = c
}

func (p *InPort[T]) disconnect() {
	p.conn = nil
}

// OutPort is the sender endpoint a component exposes.
//
// Send may be called concurrently with respect to Receive on the
// connected input port — and only with respect to that. One producer at
// a time. Send is safe from an interrupt handler.
type OutPort[T any] struct {
	conn sender[T]
}

// NewOutPort creates an unconnected output port.
func NewOutPort[T any]() *OutPort[T] {
	return &OutPort[T]{}
}

// Send offers an element to the port's connection. The element is copied
// into the connection's buffer, so the caller may reuse it after Send
// returns. On success the receiving component is requested to run.
// Returns ErrWouldBlock when the connection is full or the port is not
// connected; the caller decides whether to drop or retry.
func (p *OutPort[T]) Send(elem *T) error {
	if p.conn == nil {
		return ErrWouldBlock
	}
	return p.conn.send(elem)
}

// Full reports whether the port's connection is full. A producer that
// must not lose elements consults Full before Send, or loops on the
// ErrWouldBlock return. False when not connected.
func (p *OutPort[T]) Full() bool {
	return p.conn != nil && p.conn.full()
}

func (p *OutPort[T]) connect(c sender[T]) {
	if p.conn != nil {
		panic("flow: output port already connected")
	}
	p.conn = c
}

func (p *OutPort[T]) disconnect() {
	p.conn = nil
}

// InOutPort is a bidirectional endpoint: it behaves as an input and an
// output at once. Connecting two of them with [ConnectInOut] creates two
// oriented connections, one per direction.
type InOutPort[T any] struct {
	in  *InPort[T]
	out *OutPort[T]
}

// NewInOutPort creates a bidirectional port owned by the given component.
// The incoming side registers as peekable with the owner.
func NewInOutPort[T any](owner *Component) *InOutPort[T] {
	return &InOutPort[T]{
		in:  NewInPort[T](owner),
		out: NewOutPort[T](),
	}
}

// Receive takes the next element arriving on the incoming direction.
func (p *InOutPort[T]) Receive() (T, error) {
	return p.in.Receive()
}

// Peek reports whether an element is available on the incoming direction.
func (p *InOutPort[T]) Peek() bool {
	return p.in.Peek()
}

// Send offers an element to the outgoing direction.
func (p *InOutPort[T]) Send(elem *T) error {
	return p.out.Send(elem)
}

// Full reports whether the outgoing direction is full.
func (p *InOutPort[T]) Full() bool {
	return p.out.Full()
}
