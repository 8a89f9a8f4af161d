// File: core/concurrency/byte_ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ByteRing is a wait-free single-producer/single-consumer byte ring buffer
// with atomic head/tail cursors, padded to prevent false sharing.
// Implements api.ByteRing for cross-package consistency.

package concurrency

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*ByteRing)(nil)

// recordHeader is the length prefix stored before every record's payload.
const recordHeader = 8

// ByteRing is a bounded SPSC byte ring buffer carrying length-prefixed
// records. Cursors grow monotonically; the physical offset is cursor&mask.
// Exactly one goroutine enqueues and exactly one dequeues for the lifetime
// of the instance.
type ByteRing struct {
	capacity uint64
	mask     uint64
	buf      []byte
	_        [64]byte // Padding for hot/cold separation
	head     atomic.Uint64
	_        [64]byte // Padding
	tail     atomic.Uint64
	_        [64]byte // Padding
}

// NewByteRing allocates a ring buffer of the given byte capacity.
// Capacity must be a positive power of two.
func NewByteRing(capacity int64) (*ByteRing, error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, api.ErrInvalidCapacity
	}
	return &ByteRing{
		capacity: uint64(capacity),
		mask:     uint64(capacity - 1),
		buf:      make([]byte, capacity),
	}, nil
}

// MustByteRing is NewByteRing that panics on invalid capacity,
// for tests and package-level variables.
func MustByteRing(capacity int64) *ByteRing {
	r, err := NewByteRing(capacity)
	if err != nil {
		panic(err)
	}
	return r
}

// Enqueue copies chunk into the ring as one length-prefixed record.
// Producer-only. Returns false without modifying state if free space is
// smaller than len(chunk)+8. The head store is the release point: a consumer
// observing the new head observes the fully written record.
func (r *ByteRing) Enqueue(chunk []byte) bool {
	size := uint64(len(chunk))
	head := r.head.Load()
	tail := r.tail.Load()
	if r.capacity-(head-tail) < size+recordHeader {
		return false
	}

	var hdr [recordHeader]byte
	binary.LittleEndian.PutUint64(hdr[:], size)
	r.writeAt(head, hdr[:])
	r.writeAt(head+recordHeader, chunk)

	r.head.Store(head + recordHeader + size)
	return true
}

// Dequeue copies the oldest record into dst and returns its payload size.
// Consumer-only. Returns (0, api.ErrRingEmpty) when nothing is ready.
// Returns (size, api.ErrBufferTooSmall) when dst cannot hold the record;
// the record then stays in the ring so the caller can retry with a larger
// buffer.
func (r *ByteRing) Dequeue(dst []byte) (int, error) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head == tail {
		return 0, api.ErrRingEmpty
	}

	var hdr [recordHeader]byte
	r.readAt(tail, hdr[:])
	size := binary.LittleEndian.Uint64(hdr[:])
	if uint64(len(dst)) < size {
		return int(size), api.ErrBufferTooSmall
	}
	r.readAt(tail+recordHeader, dst[:size])

	r.tail.Store(tail + recordHeader + size)
	return int(size), nil
}

// Len returns currently occupied bytes, record headers included. Loading
// tail before head keeps the snapshot non-negative when the other side
// advances between the two loads; the result may overestimate, never
// underflow.
func (r *ByteRing) Len() int {
	tail := r.tail.Load()
	head := r.head.Load()
	return int(head - tail)
}

// Cap returns fixed ring capacity in bytes.
func (r *ByteRing) Cap() int {
	return int(r.capacity)
}

// writeAt copies src into the ring at the given logical cursor, splitting
// the copy in two when the region wraps past the buffer end.
func (r *ByteRing) writeAt(cursor uint64, src []byte) {
	idx := cursor & r.mask
	n := copy(r.buf[idx:], src)
	if n < len(src) {
		copy(r.buf, src[n:])
	}
}

// readAt copies from the ring at the given logical cursor into dst,
// splitting the copy in two when the region wraps.
func (r *ByteRing) readAt(cursor uint64, dst []byte) {
	idx := cursor & r.mask
	n := copy(dst, r.buf[idx:])
	if n < len(dst) {
		copy(dst[n:], r.buf)
	}
}
