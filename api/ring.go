// Package api
// Author: momentics <momentics@gmail.com>
//
// Wait-free SPSC byte ring buffer contract.

package api

// ByteRing is a bounded single-producer/single-consumer byte ring buffer
// carrying length-prefixed records.
//
// Exactly one goroutine may call Enqueue and exactly one (possibly different)
// goroutine may call Dequeue for the lifetime of the instance. The contract is
// enforced by convention, not by internal locking; violating it is undefined
// behavior.
type ByteRing interface {
	// Enqueue copies chunk into the ring as one record.
	// Returns false without modifying state if there is not enough free
	// space for the record and its length header.
	Enqueue(chunk []byte) bool
	// Dequeue copies the oldest record into dst and returns its size.
	// Returns ErrRingEmpty when nothing is ready, or ErrBufferTooSmall
	// (with the required size) when dst cannot hold the record; the record
	// then stays in the ring.
	Dequeue(dst []byte) (int, error)
	// Len returns currently occupied bytes, headers included.
	Len() int
	// Cap returns fixed ring capacity in bytes.
	Cap() int
}
