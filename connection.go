// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Connection is the opaque handle returned by the connect functions. Its
// only use is a later [Disconnect]. The connection owns the binding:
// ports hold non-owning references that Disconnect clears.
type Connection interface {
	disconnect()
}

// Disconnect detaches a connection from both of its ports and releases
// its buffer. The ports are reusable afterwards. Disconnecting the same
// handle twice is undefined.
func Disconnect(c Connection) {
	c.disconnect()
}

// fifoConnection joins one output port to one input port through a Ring.
type fifoConnection[T any] struct {
	ring     *Ring[T]
	receiver *InPort[T]
	sender   *OutPort[T]
}

// send enqueues, then wakes the receiving component. The wake happens
// only after the element is published so a sweep that observes the
// request also observes the data.
func (c *fifoConnection[T]) send(elem *T) error {
	if err := c.ring.Enqueue(elem); err != nil {
		return err
	}
	c.receiver.Request()
	return nil
}

func (c *fifoConnection[T]) receive() (T, error) {
	return c.ring.Dequeue()
}

func (c *fifoConnection[T]) peek() bool {
	return !c.ring.IsEmpty()
}

func (c *fifoConnection[T]) full() bool {
	return c.ring.IsFull()
}

func (c *fifoConnection[T]) disconnect() {
	c.sender.disconnect()
	c.receiver.disconnect()
}

// Connect joins an output port to an input port with a buffering
// capacity of one element, or of capacity[0] elements when given.
//
// Panics if either port is nil or already connected: a port holds at
// most one connection at a time.
func Connect[T any](sender *OutPort[T], receiver *InPort[T], capacity ...int) Connection {
	if sender == nil || receiver == nil {
		panic("flow: connect requires non-nil ports")
	}
	size := 1
	if len(capacity) > 0 {
		size = capacity[0]
	}
	c := &fifoConnection[T]{
		ring:     NewRing[T](size),
		receiver: receiver,
		sender:   sender,
	}
	sender.connect(c)
	receiver.connect(c)
	return c
}

// inOutConnection is a pair of oriented FIFO connections between two
// bidirectional ports.
type inOutConnection[T any] struct {
	aToB *fifoConnection[T]
	bToA *fifoConnection[T]
}

func (c *inOutConnection[T]) disconnect() {
	c.aToB.disconnect()
	c.bToA.disconnect()
}

// ConnectInOut joins two bidirectional ports: what a sends, b receives,
// and vice versa. Each direction buffers one element, or capacity[0]
// elements when given.
func ConnectInOut[T any](a, b *InOutPort[T], capacity ...int) Connection {
	if a == nil || b == nil {
		panic("flow: connect requires non-nil ports")
	}
	size := 1
	if len(capacity) > 0 {
		size = capacity[0]
	}
	c := &inOutConnection[T]{
		aToB: &fifoConnection[T]{ring: NewRing[T](size), receiver: b.in, sender: a.out},
		bToA: &fifoConnection[T]{ring: NewRing[T](size), receiver: a.in, sender: b.out},
	}
	a.out.connect(c.aToB)
	b.in.connect(c.aToB)
	b.out.connect(c.bToA)
	a.in.connect(c.bToA)
	return c
}

// constantConnection binds an input port to a fixed value. No ring is
// involved: the value is always available.
type constantConnection[T any] struct {
	value    T
	receiver *InPort[T]
}

func (c *constantConnection[T]) receive() (T, error) {
	return c.value, nil
}

func (c *constantConnection[T]) peek() bool {
	return true
}

func (c *constantConnection[T]) full() bool {
	return true
}

func (c *constantConnection[T]) disconnect() {
	c.receiver.disconnect()
}

// ConnectConstant binds an input port to a constant source: Receive
// always yields value and succeeds, Peek is always true. A convenience
// for pinning a parameter port without a producing component.
func ConnectConstant[T any](value T, receiver *InPort[T]) Connection {
	if receiver == nil {
		panic("flow: connect requires non-nil ports")
	}
	c := &constantConnection[T]{value: value, receiver: receiver}
	receiver.connect(c)
	return c
}
