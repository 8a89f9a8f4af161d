// File: core/concurrency/spinlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpinLock is a busy-wait mutual exclusion primitive. Callers opt into
// spinning explicitly; use sync.Mutex when the critical section may be long.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var (
	_ sync.Locker = (*SpinLock)(nil)
	_ api.Locker  = (*SpinLock)(nil)
)

// yieldEvery bounds the number of failed acquisition rounds between
// runtime.Gosched calls, so the goroutine holding the lock can be scheduled.
const yieldEvery = 128

// SpinLock is a test-and-set lock around a single atomic flag. The zero
// value is an unlocked lock. Not reentrant: a goroutine acquiring a lock it
// already holds deadlocks. No fairness guarantee; waiters may starve under
// heavy contention.
type SpinLock struct {
	flag atomic.Bool
}

// IsLocked reports the flag state at the moment of the load. Diagnostic
// only: a false result does not mean the lock will still be free by the
// time the caller acts on it.
func (l *SpinLock) IsLocked() bool {
	return l.flag.Load()
}

// TryLock makes a single acquisition attempt and never waits.
func (l *SpinLock) TryLock() bool {
	return l.flag.CompareAndSwap(false, true)
}

// TryLockSpin retries acquisition up to spin times before giving up.
// Each round reads the flag before attempting the compare-and-swap, keeping
// contended waiting on the cheap load instead of redundant atomic
// read-modify-write traffic.
func (l *SpinLock) TryLockSpin(spin int64) bool {
	for i := int64(0); i < spin; i++ {
		if !l.flag.Load() && l.flag.CompareAndSwap(false, true) {
			return true
		}
	}
	return false
}

// TryLockFor spins until acquired or the duration elapses.
func (l *SpinLock) TryLockFor(d time.Duration) bool {
	return l.TryLockUntil(time.Now().Add(d))
}

// TryLockUntil spins until acquired or the deadline passes, yielding the
// processor between rounds. time.Now is monotonic per the time package, so
// wall-clock adjustments do not cut the wait short.
func (l *SpinLock) TryLockUntil(deadline time.Time) bool {
	for {
		if l.TryLockSpin(yieldEvery) {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		runtime.Gosched()
	}
}

// Lock spins unconditionally until acquired. Intended for short critical
// sections only. Yields periodically so the holder's goroutine can run even
// when waiters outnumber processors.
func (l *SpinLock) Lock() {
	for {
		if l.TryLockSpin(yieldEvery) {
			return
		}
		runtime.Gosched()
	}
}

// Unlock releases the lock. Holder only.
func (l *SpinLock) Unlock() {
	l.flag.Store(false)
}
