// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Reactor is the cooperative scheduler. It keeps components in an
// intrusive singly-linked list in registration order and, on every Run,
// invokes exactly the ones with work: a peekable input or a pending
// request.
//
// The reactor goroutine is the only caller of component Run, Start and
// Stop bodies; components therefore never need internal locking. Other
// goroutines and interrupt contexts interact with the graph exclusively
// through port Send and Receive.
//
// Most applications use the package-level default reactor; tests and
// multi-graph hosts create their own with [NewReactor].
type Reactor struct {
	first *Component
	last  *Component

	running bool
}

// NewReactor creates an empty reactor in the unconfigured state.
func NewReactor() *Reactor {
	return &Reactor{}
}

// Add registers a component for scheduling. Components are swept in
// registration order, which is the only execution order guarantee the
// reactor gives. The list is append-only while running; [Reactor.Reset]
// is the only way to drop entries.
//
// A registered component must live for the reactor's entire lifetime.
func (r *Reactor) Add(runner Runner) {
	if runner == nil {
		panic("flow: cannot add a nil component")
	}

	var node *Component
	if e, ok := runner.(interface{ component() *Component }); ok {
		node = e.component()
	} else {
		node = &Component{}
	}
	node.runner = runner

	if r.first == nil {
		r.first = node
		r.last = node
	} else {
		r.last.next = node
		r.last = node
	}
}

// Start performs second-stage initialization: every registered component
// implementing [Starter] gets its Start hook invoked, in registration
// order. Transitions the reactor to running. Panics if already running.
func (r *Reactor) Start() {
	if r.running {
		panic("flow: reactor already running")
	}

	for node := r.first; node != nil; node = node.next {
		if s, ok := node.runner.(Starter); ok {
			s.Start()
		}
	}
	r.running = true
}

// Stop invokes the [Stopper] hooks symmetrically to Start and leaves the
// running state. Panics if not running.
func (r *Reactor) Stop() {
	if !r.running {
		panic("flow: reactor is not running")
	}

	for node := r.first; node != nil; node = node.next {
		if s, ok := node.runner.(Stopper); ok {
			s.Stop()
		}
	}
	r.running = false
}

// Run performs one sweep: every component with a peekable input or a
// pending request is run, at most once, in registration order. An
// element sent during the sweep to a component later in the list is
// handled on this same sweep; one sent to an earlier component fires the
// next sweep. If the whole sweep ran nothing, the platform's
// WaitForEvent is invoked once.
//
// Putting Run in a for loop is the typical main on a microcontroller.
// Panics if the reactor is not running.
func (r *Reactor) Run() {
	if !r.running {
		panic("flow: reactor is not running")
	}

	ranSomething := false
	for node := r.first; node != nil; node = node.next {
		if node.tryRun() {
			ranSomething = true
		}
	}

	if !ranSomething {
		platform.WaitForEvent()
	}
}

// Reset drops every registration, returning the reactor to the
// unconfigured state. Meant for tests; in production it loses the whole
// graph.
func (r *Reactor) Reset() {
	r.first = nil
	r.last = nil
	r.running = false
}

// theOne is the process-wide default reactor. Components register into
// it through the package-level wrappers, which gives an application a
// default destination without plumbing a reactor around.
var theOne = NewReactor()

// Default returns the process-wide default reactor.
func Default() *Reactor {
	return theOne
}

// Add registers a component with the default reactor.
func Add(runner Runner) {
	theOne.Add(runner)
}

// Start starts the default reactor.
func Start() {
	theOne.Start()
}

// Stop stops the default reactor.
func Stop() {
	theOne.Stop()
}

// Run performs one sweep of the default reactor.
func Run() {
	theOne.Run()
}

// Reset drops every registration from the default reactor.
func Reset() {
	theOne.Reset()
}
