// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package raster

import "sync"

// countingSemaphore is a signed-monotone counter used as a
// join barrier between the scanline scheduler and the draw
// orchestrator. signal increments the counter by one and
// wakes a waiter; waitFor blocks until the counter reaches
// target, then atomically subtracts target.
//
// Exactly one waiter at a time is expected - callers provide
// that ordering by construction, one renderContext per face
// - so a single sync.Cond Signal per signal call is enough;
// there is no need for golang.org/x/sync/semaphore.Weighted
// here, since that type requires every Acquire to be matched
// by a Release of the same units and cannot express "wake
// once an arbitrary number of independent signals land".
//
// This is a direct translation of the original
// mutex+condition-variable counter (core/semaphore.c in the
// reference implementation).
type countingSemaphore struct {
	mu    sync.Mutex
	cond  *sync.Cond
	value uint64
}

// newCountingSemaphore returns a countingSemaphore starting
// at zero.
func newCountingSemaphore() *countingSemaphore {
	s := &countingSemaphore{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// signal increments the counter by one and wakes the
// waiter, if any.
func (s *countingSemaphore) signal() {
	s.mu.Lock()
	s.value++
	s.mu.Unlock()
	s.cond.Signal()
}

// waitFor blocks until the counter is at least target, then
// subtracts target from it.
func (s *countingSemaphore) waitFor(target uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.value < target {
		s.cond.Wait()
	}
	s.value -= target
}
