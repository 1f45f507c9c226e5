package testutil

import "sync"

// ManualClock is a settable external clock for tests.
//
// Unlike the store-persisted clock, ManualClock is advanced explicitly by
// the test, so the same scenario can replay the exact tick sequence it
// wants: repeated reads at one height, then a strict advance.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type ManualClock struct {
	mu     sync.Mutex
	height uint64
}

// NewManualClock creates a manual clock at the given starting height.
func NewManualClock(height uint64) *ManualClock {
	return &ManualClock{height: height}
}

// Height returns the current reading without advancing it.
//
// Implements board.Clock.
func (c *ManualClock) Height() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

// Advance moves the clock forward by n ticks.
//
// Monotonic: the height never decreases.
func (c *ManualClock) Advance(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height += n
}

// Set pins the clock to an absolute height.
//
// Callers are responsible for keeping the sequence non-decreasing; the
// core only ever compares readings for equality.
func (c *ManualClock) Set(height uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height = height
}
