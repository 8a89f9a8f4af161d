// File: core/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package concurrency provides lock-free and wait-free inter-thread
// communication primitives: a bounded SPSC byte ring buffer (ByteRing), an
// unbounded MPSC linked queue (MPSCQueue), a busy-wait lock (SpinLock) and a
// spin-guarded unbounded queue (LockedQueue).
//
// The primitives never block in the kernel. Full/empty conditions are
// signaled through boolean or sentinel-error returns and the caller decides
// whether to retry, spin or apply backpressure. Producer/consumer cardinality
// contracts (single producer on ByteRing, single consumer on MPSCQueue) are
// enforced by convention only; violating them is undefined behavior.
package concurrency
