// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import "code.hybscloud.com/atomix"

// triggerCapacity is the number of pending pulses a trigger connection
// can hold: the 16-bit wrap domain minus one, so full and empty stay
// distinguishable.
const triggerCapacity = 1<<16 - 1

// triggerConnection is a payload-free connection. It carries only edge
// counts: N sends that were not yet received mean "N events happened
// since last checked", with no per-event storage. That keeps pulses from
// an interrupt handler as cheap as one atomic increment.
type triggerConnection struct {
	_        pad
	recvd    atomix.Uint64 // total received, consumer side
	_        pad
	sent     atomix.Uint64 // total sent, producer side
	_        pad
	receiver *InTrigger
	sender   *OutTrigger
}

func (c *triggerConnection) send() error {
	sent := c.sent.LoadRelaxed()
	if uint16(sent-c.recvd.LoadAcquire()) == triggerCapacity {
		return ErrWouldBlock
	}
	c.sent.StoreRelease(sent + 1)
	c.receiver.Request()
	return nil
}

func (c *triggerConnection) receive() error {
	recvd := c.recvd.LoadRelaxed()
	if recvd == c.sent.LoadAcquire() {
		return ErrWouldBlock
	}
	c.recvd.StoreRelease(recvd + 1)
	return nil
}

func (c *triggerConnection) peek() bool {
	return c.sent.LoadAcquire() != c.recvd.LoadAcquire()
}

func (c *triggerConnection) full() bool {
	return uint16(c.sent.LoadAcquire()-c.recvd.LoadAcquire()) == triggerCapacity
}

func (c *triggerConnection) disconnect() {
	c.sender.disconnect()
	c.receiver.disconnect()
}

// InTrigger is the receiver endpoint of a trigger connection. Same
// single-consumer discipline as [InPort].
type InTrigger struct {
	owner *Component
	conn  *triggerConnection
}

// NewInTrigger creates a trigger input owned by the given component.
// A nil owner is allowed, as with [NewInPort].
func NewInTrigger(owner *Component) *InTrigger {
	p := &InTrigger{owner: owner}
	owner.attach(p)
	return p
}

// Receive consumes one pending pulse.
// Returns ErrWouldBlock when no pulse is pending or the port is not
// connected.
func (p *InTrigger) Receive() error {
	if p.conn == nil {
		return ErrWouldBlock
	}
	return p.conn.receive()
}

// Peek reports whether a pulse is pending.
func (p *InTrigger) Peek() bool {
	return p.conn != nil && p.conn.peek()
}

// Full reports whether the connection holds the maximum number of
// pending pulses.
func (p *InTrigger) Full() bool {
	return p.conn != nil && p.conn.full()
}

// Request wakes the owning component.
func (p *InTrigger) Request() {
	if p.owner != nil {
		p.owner.Request()
	}
}

func (p *InTrigger) connect(c *triggerConnection) {
	if p.conn != nil {
		panic("flow: input port already connected")
	}
	p.conn = c
}

func (p *InTrigger) disconnect() {
	p.conn = nil
}

// OutTrigger is the sender endpoint of a trigger connection. Send is
// safe from an interrupt handler.
type OutTrigger struct {
	conn *triggerConnection
}

// NewOutTrigger creates an unconnected trigger output.
func NewOutTrigger() *OutTrigger {
	return &OutTrigger{}
}

// Send emits one pulse and requests the receiving component.
// Returns ErrWouldBlock when the connection is full or the port is not
// connected.
func (p *OutTrigger) Send() error {
	if p.conn == nil {
		return ErrWouldBlock
	}
	return p.conn.send()
}

// Full reports whether the connection holds the maximum number of
// pending pulses.
func (p *OutTrigger) Full() bool {
	return p.conn != nil && p.conn.full()
}

func (p *OutTrigger) connect(c *triggerConnection) {
	if p.conn != nil {
		panic("flow: output port already connected")
	}
	p.conn = c
}

func (p *OutTrigger) disconnect() {
	p.conn = nil
}

// ConnectTrigger joins a trigger output to a trigger input.
// Panics if either port is nil or already connected.
func ConnectTrigger(sender *OutTrigger, receiver *InTrigger) Connection {
	if sender == nil || receiver == nil {
		panic("flow: connect requires non-nil ports")
	}
	c := &triggerConnection{receiver: receiver, sender: sender}
	sender.connect(c)
	receiver.connect(c)
	return c
}
