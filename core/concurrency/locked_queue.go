// File: core/concurrency/locked_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LockedQueue is an unbounded FIFO guarded by SpinLock. It serializes access
// instead of partitioning it, which makes it safe for any producer/consumer
// cardinality and the conventional-locking baseline the lock-free types are
// benchmarked against.

package concurrency

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*LockedQueue[any])(nil)

// LockedQueue is an unbounded FIFO safe for any number of producers and
// consumers. Critical sections are a few pointer moves, short enough for
// busy-waiting to beat a kernel mutex under moderate contention.
type LockedQueue[T any] struct {
	lock SpinLock
	q    *queue.Queue
}

// NewLockedQueue creates an empty queue.
func NewLockedQueue[T any]() *LockedQueue[T] {
	return &LockedQueue[T]{q: queue.New()}
}

// Enqueue adds an item. Always returns true; the queue grows as needed.
func (s *LockedQueue[T]) Enqueue(item T) bool {
	s.lock.Lock()
	s.q.Add(item)
	s.lock.Unlock()
	return true
}

// Dequeue removes the oldest item; ok is false when the queue is empty.
func (s *LockedQueue[T]) Dequeue() (T, bool) {
	var zero T
	s.lock.Lock()
	if s.q.Length() == 0 {
		s.lock.Unlock()
		return zero, false
	}
	item := s.q.Remove().(T)
	s.lock.Unlock()
	return item, true
}

// Peek returns the oldest item without removing it.
func (s *LockedQueue[T]) Peek() (T, bool) {
	var zero T
	s.lock.Lock()
	if s.q.Length() == 0 {
		s.lock.Unlock()
		return zero, false
	}
	item := s.q.Peek().(T)
	s.lock.Unlock()
	return item, true
}

// Len returns the current number of items.
func (s *LockedQueue[T]) Len() int {
	s.lock.Lock()
	n := s.q.Length()
	s.lock.Unlock()
	return n
}
