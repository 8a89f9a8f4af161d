// Package api
// Author: momentics <momentics@gmail.com>
//
// Busy-wait mutual exclusion contract.

package api

import (
	"sync"
	"time"
)

// Locker is a busy-wait lock contract. It extends sync.Locker with
// non-blocking, bounded-spin and deadline acquisition so callers choose the
// waiting tradeoff explicitly instead of hiding it behind one lock type.
//
// Implementations are not reentrant: a goroutine acquiring a lock it already
// holds deadlocks.
type Locker interface {
	sync.Locker

	// TryLock makes a single acquisition attempt and never waits.
	TryLock() bool
	// TryLockSpin retries acquisition up to spin times before giving up.
	TryLockSpin(spin int64) bool
	// TryLockFor spins until acquired or the duration elapses.
	TryLockFor(d time.Duration) bool
	// TryLockUntil spins until acquired or the deadline passes.
	TryLockUntil(deadline time.Time) bool
	// IsLocked reports the flag state at the moment of the load. It carries
	// no ordering guarantee and must not be used to decide correctness.
	IsLocked() bool
}
