// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Pool hands out fixed-address elements of T and recycles them. Large
// payloads (sensor frames, protocol messages) travel through connections
// by pointer; the pool is what makes that safe without allocation at
// steady state: the producer takes a slot, fills it, sends the pointer,
// and the consumer releases the slot when done.
//
// The backing storage is one array of T allocated at construction; the
// free list is a [Ring] of pointers into it, initially holding every
// slot. The pool inherits the ring's SPSC discipline: one taker and one
// releaser may operate concurrently, on different execution contexts.
//
// A slot is either checked out (held by exactly one owner) or on the
// free list. Releasing a pointer that did not come from Take on this
// pool, or releasing the same pointer twice, breaks that invariant and
// is undefined.
type Pool[T any] struct {
	storage []T
	free    *Ring[*T]
}

// NewPool creates a pool of exactly capacity elements, all initially
// available. Panics if capacity is outside [1, 65535].
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		storage: make([]T, capacity),
		free:    NewRing[*T](capacity),
	}
	for i := range p.storage {
		elem := &p.storage[i]
		p.free.Enqueue(&elem)
	}
	return p
}

// Take checks an element out of the pool. The element keeps whatever
// value its previous owner left in it.
// Returns ErrWouldBlock when every element is checked out.
func (p *Pool[T]) Take() (*T, error) {
	return p.free.Dequeue()
}

// Release returns an element to the pool.
// Returns ErrWouldBlock only if the free list is full, which a caller
// honoring the checkout invariant can never observe.
func (p *Pool[T]) Release(elem *T) error {
	return p.free.Enqueue(&elem)
}

// HaveAvailable reports whether at least one element can be taken.
func (p *Pool[T]) HaveAvailable() bool {
	return !p.free.IsEmpty()
}

// Cap returns the pool capacity.
func (p *Pool[T]) Cap() int {
	return len(p.storage)
}
