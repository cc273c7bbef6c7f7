// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import "code.hybscloud.com/atomix"

// Runner is the executable contract of a component: a non-blocking,
// run-to-completion body. The reactor is the only caller of Run; a Run
// body must not block and must not spawn goroutines that touch the
// component's state.
//
// A component that wants to process bursts should loop on Receive
// internally: the reactor invokes Run at most once per sweep no matter
// how many elements arrived since the previous sweep.
type Runner interface {
	Run()
}

// Starter is an optional second-stage initialization hook. The reactor
// invokes Start on every registered component, in registration order,
// exactly once when it transitions to running.
type Starter interface {
	Start()
}

// Stopper is the symmetric deinitialization hook, invoked by
// [Reactor.Stop].
type Stopper interface {
	Stop()
}

// peeker is anything the reactor can poll for pending input. Input ports
// register themselves with their owning component at construction.
type peeker interface {
	Peek() bool
}

// Component carries the scheduling state the reactor and the ports share.
// Embed it in a component struct and pass its address as the owner of
// every input port:
//
//	type Invert struct {
//	    flow.Component
//	    In  *flow.InPort[bool]
//	    Out *flow.OutPort[bool]
//	}
//
//	func NewInvert() *Invert {
//	    c := &Invert{}
//	    c.In = flow.NewInPort[bool](&c.Component)
//	    c.Out = flow.NewOutPort[bool]()
//	    return c
//	}
//
// The zero value is ready for use.
type Component struct {
	runner Runner
	next   *Component

	// request counts run requests; execute counts the requests the
	// reactor has honored. The component is pending while they differ.
	// request is incremented through the platform hook so it is safe
	// from any execution context; execute is reactor-side only.
	request atomix.Int32
	execute int32

	peeks []peeker
}

// Request asks the reactor to run this component on its next sweep even
// if no input is peekable. Producers call it through the connection send
// path; an interrupt handler may call it directly. It is a single atomic
// increment and never blocks.
func (c *Component) Request() {
	platform.AtomicFetchAdd(&c.request, 1)
}

// attach registers an input as pollable. Nil-safe so that ownerless
// ports (test probes) cost nothing.
func (c *Component) attach(p peeker) {
	if c != nil {
		c.peeks = append(c.peeks, p)
	}
}

// component anchors the embedding lookup used by Reactor.Add.
func (c *Component) component() *Component { return c }

// tryRun runs the component if a request is pending or any registered
// input is peekable. The pending request is cleared before Run so that
// requests raised during Run fire a later sweep.
func (c *Component) tryRun() bool {
	doRun := platform.AtomicFetchAdd(&c.request, 0) != c.execute
	if !doRun {
		for _, p := range c.peeks {
			if p.Peek() {
				doRun = true
				break
			}
		}
	}

	if doRun {
		c.execute = platform.AtomicFetchAdd(&c.request, 0)
		c.runner.Run()
	}
	return doRun
}
