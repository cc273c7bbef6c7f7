// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package flow is a pipes-and-filters runtime for embedded and host
// software: an application is a static graph of components whose typed
// ports are joined by connections, driven by a cooperative reactor.
//
// Components exchange data through lock-free single-producer
// single-consumer rings, which makes a connection safe between any two
// execution contexts — goroutine to goroutine, main loop to interrupt
// handler — without locks and without allocation at steady state. The
// reactor wakes a component only when one of its inputs has data or a
// producer requested it.
//
// # Quick Start
//
// Declare a component by embedding [Component] and giving it ports and a
// Run body:
//
//	type Doubler struct {
//	    flow.Component
//	    In  *flow.InPort[int]
//	    Out *flow.OutPort[int]
//	}
//
//	func NewDoubler() *Doubler {
//	    d := &Doubler{}
//	    d.In = flow.NewInPort[int](&d.Component)
//	    d.Out = flow.NewOutPort[int]()
//	    return d
//	}
//
//	func (d *Doubler) Run() {
//	    for {
//	        v, err := d.In.Receive()
//	        if err != nil {
//	            break
//	        }
//	        v *= 2
//	        d.Out.Send(&v)
//	    }
//	}
//
// Wire a graph, register the components, and drive the reactor:
//
//	doubler := NewDoubler()
//	sink := flow.NewInPort[int](nil)
//
//	source := flow.NewOutPort[int]()
//	flow.Connect(source, doubler.In, 8)
//	flow.Connect(doubler.Out, sink, 8)
//
//	flow.Add(doubler)
//	flow.Start()
//	for {
//	    flow.Run()
//	}
//
// # Scheduling
//
// [Reactor.Run] performs one sweep: components fire at most once each,
// in registration order, and only when an input is peekable or a request
// is pending. A component must drain what it wants in one Run — loop on
// Receive until ErrWouldBlock to absorb bursts. When a full sweep runs
// nothing, the reactor calls the platform's WaitForEvent, so an idle
// graph costs nothing but that call.
//
// An element sent while the sweep is in progress reaches a component
// later in the list on the same sweep, and a component earlier in the
// list on the next one.
//
// # Interrupt safety
//
// A connection has exactly one producer and one consumer, and either may
// be an interrupt handler. The send path is a slot write plus one
// release-store; the wake path is one atomic increment through the
// platform hook. Neither takes a lock. Trigger connections (see
// [ConnectTrigger]) carry event counts with no payload at all, keeping
// interrupt pulses as cheap as possible.
//
// The reactor itself is single-threaded: Run, Start and Stop bodies only
// ever execute on the reactor's goroutine.
//
// # Backpressure
//
// Full and empty are normal conditions, reported as [ErrWouldBlock]
// (sourced from [code.hybscloud.com/iox] for ecosystem consistency).
// Send on a full connection drops nothing inside the graph — the element
// simply is not accepted, and the producing component chooses its own
// policy: drop, retry next run, or propagate upstream.
//
//	if err := out.Send(&v); flow.IsWouldBlock(err) {
//	    // consumer is behind; v was not delivered
//	}
//
// Structural misuse — connecting an already-connected port, running a
// reactor that was never started — is a programming error and panics.
//
// # Pools
//
// Large payloads move by pointer. A [Pool] owns a fixed array of T and a
// free list on the same ring primitive; take a slot, fill it, send the
// pointer, release on the far side:
//
//	frames := flow.NewPool[Frame](16)
//
//	// producer
//	if f, err := frames.Take(); err == nil {
//	    fill(f)
//	    out.Send(&f)
//	}
//
//	// consumer
//	if f, err := in.Receive(); err == nil {
//	    process(f)
//	    frames.Release(f)
//	}
//
// # Porting
//
// Two functions adapt the runtime to a target: WaitForEvent (what to do
// when idle) and AtomicFetchAdd (the one read-modify-write the wake path
// needs). See [Platform]; hosted targets use the default [HostPlatform].
//
// # Stock components
//
// Package [code.hybscloud.com/flow/components] ships the usual small
// filters: invert, convert, counters, split, combine, timer, toggle, and
// a debug stream.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions.
package flow
