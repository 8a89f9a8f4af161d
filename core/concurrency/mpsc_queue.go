// File: core/concurrency/mpsc_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// MPSCQueue is an unbounded multi-producer/single-consumer linked queue,
// a non-intrusive Vyukov queue over atomic.Pointer nodes.

package concurrency

import (
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*MPSCQueue[any])(nil)

// node holds one queued value and the link to its successor.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// MPSCQueue is an unbounded linked queue for any number of producer
// goroutines and exactly one consumer goroutine. A permanent stub node keeps
// head and tail non-nil; it is replaced on every dequeue, never removed.
//
// head is owned by the consumer; tail is swapped by producers. Padding
// separates the two sides so producer and consumer traffic land on
// different cache lines.
type MPSCQueue[T any] struct {
	head *node[T]
	_    [64]byte // Padding between consumer-owned and producer-owned fields
	tail atomic.Pointer[node[T]]
	_    [64]byte // Padding
	size atomic.Int64
}

// NewMPSCQueue creates an empty queue with its stub node installed.
func NewMPSCQueue[T any]() *MPSCQueue[T] {
	q := &MPSCQueue[T]{}
	stub := &node[T]{}
	q.head = stub
	q.tail.Store(stub)
	return q
}

// Enqueue adds an item. Safe for any number of concurrent producers and
// wait-free per producer: one allocation, one swap, one store, no retry
// loop. The tail swap is the linearization point establishing the total
// order among all producers' enqueues; the link store that follows makes
// the node reachable for the consumer.
//
// Always returns true: Go allocation failure aborts the process rather than
// failing recoverably. The boolean return keeps the queue contract uniform
// with bounded implementations.
func (q *MPSCQueue[T]) Enqueue(item T) bool {
	n := &node[T]{value: item}
	prev := q.tail.Swap(n)
	prev.next.Store(n)
	q.size.Add(1)
	return true
}

// Dequeue removes the oldest item. Consumer-only.
//
// A false result means nothing is ready *right now*: a producer may have
// already swapped the tail but not yet linked its node, so the result can be
// a transient false-empty and callers draining a known workload must retry,
// not treat one false as terminal. The dequeued-over node is never touched
// by producers again, so dropping the last reference to it is safe.
func (q *MPSCQueue[T]) Dequeue() (T, bool) {
	var zero T
	next := q.head.next.Load()
	if next == nil {
		return zero, false
	}
	item := next.value
	next.value = zero // release the reference held by the new stub
	q.head = next
	q.size.Add(-1)
	return item, true
}

// Len returns the current number of items. Under concurrent producers the
// value is a momentary snapshot.
func (q *MPSCQueue[T]) Len() int {
	return int(q.size.Load())
}
