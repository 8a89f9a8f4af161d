// Package api
// Author: momentics <momentics@gmail.com>
//
// Unbounded queue contract shared by the MPSC and lock-guarded queues.

package api

// Queue is an unbounded FIFO queue contract.
//
// Implementations state their own producer/consumer cardinality: MPSCQueue
// allows any number of producers and exactly one consumer, LockedQueue allows
// any number of both.
type Queue[T any] interface {
	// Enqueue adds an item; false only when the implementation cannot
	// accept it (queue state is then unchanged).
	Enqueue(item T) bool
	// Dequeue removes the oldest item; ok is false when nothing is ready.
	// For MPSC implementations a false result may be a transient
	// false-empty under producer race and should be retried.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
}
