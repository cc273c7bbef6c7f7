// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import "code.hybscloud.com/atomix"

// ringCapacityMax is the largest ring capacity. Occupancy is computed in
// 16-bit modular arithmetic, so a ring must never hold 2^16 elements:
// full and empty would become indistinguishable.
const ringCapacityMax = 1<<16 - 1

// Ring is a single-producer single-consumer bounded FIFO.
//
// Based on Lamport's ring buffer with cached index optimization. The
// producer caches the consumer's dequeue count, and vice versa, reducing
// cross-core cache line traffic. Every connection owns one Ring; the
// port layer above guarantees the single-producer single-consumer
// discipline, which is what makes a Ring safe with the two sides on
// different execution contexts (goroutine, OS thread, interrupt handler).
//
// Capacity is exact, not rounded: connections default to a single slot
// and the full/empty tests rely on the requested size. Occupancy is
// tracked with monotonic enqueue/dequeue counts compared in 16-bit
// modular arithmetic; the live distance is always in [0, capacity], so
// the wrap keeps the tests correct for any capacity up to 2^16 - 1.
//
// Memory ordering: the slot write is ordered before the enqueue count
// increment (release), and the matching count load on the consumer side
// is an acquire, so a Dequeue that succeeds observes everything the
// producer wrote before publishing. Symmetrically for slot reuse.
type Ring[T any] struct {
	_         pad
	deq       atomix.Uint64 // total dequeued, consumer side
	head      uint16        // next slot to read, consumer only
	cachedEnq uint64        // consumer's cached view of enq
	_         pad
	enq       atomix.Uint64 // total enqueued, producer side
	tail      uint16        // next slot to write, producer only
	cachedDeq uint64        // producer's cached view of deq
	_         pad
	buffer []T
	size   uint16
}

// NewRing creates a ring with exactly the given capacity.
// Panics if capacity is outside [1, 65535].
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 || capacity > ringCapacityMax {
		panic("flow: ring capacity must be in [1, 65535]")
	}
	return &Ring[T]{
		buffer: make([]T, capacity),
		size:   uint16(capacity),
	}
}

// Enqueue adds an element to the ring (producer only).
// The element is copied into the ring's buffer.
// Returns ErrWouldBlock if the ring is full; the ring is not mutated.
func (r *Ring[T]) Enqueue(elem *T) error {
	enq := r.enq.LoadRelaxed()
	if uint16(enq-r.cachedDeq) == r.size {
		r.cachedDeq = r.deq.LoadAcquire()
		if uint16(enq-r.cachedDeq) == r.size {
			return ErrWouldBlock
		}
	}

	r.buffer[r.tail] = *elem
	if r.tail == r.size-1 {
		r.tail = 0
	} else {
		r.tail++
	}
	r.enq.StoreRelease(enq + 1)
	return nil
}

// Dequeue removes and returns the oldest element (consumer only).
// Returns (zero value, ErrWouldBlock) if the ring is empty.
// The vacated slot is cleared to allow garbage collection of referenced
// objects.
func (r *Ring[T]) Dequeue() (T, error) {
	deq := r.deq.LoadRelaxed()
	if deq == r.cachedEnq {
		r.cachedEnq = r.enq.LoadAcquire()
		if deq == r.cachedEnq {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := r.buffer[r.head]
	var zero T
	r.buffer[r.head] = zero
	if r.head == r.size-1 {
		r.head = 0
	} else {
		r.head++
	}
	r.deq.StoreRelease(deq + 1)
	return elem, nil
}

// Peek returns the oldest element without removing it (consumer only).
// Returns (zero value, ErrWouldBlock) if the ring is empty.
func (r *Ring[T]) Peek() (T, error) {
	deq := r.deq.LoadRelaxed()
	if deq == r.cachedEnq {
		r.cachedEnq = r.enq.LoadAcquire()
		if deq == r.cachedEnq {
			var zero T
			return zero, ErrWouldBlock
		}
	}
	return r.buffer[r.head], nil
}

// IsEmpty reports whether the ring currently holds no elements.
// Safe to call from either side; the snapshot is only ordering-accurate
// on the side that last modified the relevant count.
func (r *Ring[T]) IsEmpty() bool {
	return r.enq.LoadAcquire() == r.deq.LoadAcquire()
}

// IsFull reports whether the ring currently holds capacity elements.
// Same snapshot semantics as IsEmpty.
func (r *Ring[T]) IsFull() bool {
	return uint16(r.enq.LoadAcquire()-r.deq.LoadAcquire()) == r.size
}

// Len returns the number of elements currently held, computed as the
// enqueue/dequeue count distance in 16-bit modular arithmetic.
func (r *Ring[T]) Len() int {
	return int(uint16(r.enq.LoadAcquire() - r.deq.LoadAcquire()))
}

// Cap returns the ring capacity.
func (r *Ring[T]) Cap() int {
	return int(r.size)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
