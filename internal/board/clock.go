package board

// Clock is the external tick source sampled at generation creation and
// stepping. Readings must be non-decreasing across samples; the core only
// compares readings for equality, it never requires a strict increase.
//
// Production code injects a store-persisted clock sampled once per
// operation; tests inject a manual clock.
type Clock interface {
	Height() uint64
}

// ClockAt returns a Clock pinned to a single reading. The surrounding
// environment samples its real clock once per operation and hands the
// core a fixed reading, keeping the transition rule a pure function of
// its inputs.
func ClockAt(height uint64) Clock {
	return fixedClock(height)
}

type fixedClock uint64

func (c fixedClock) Height() uint64 { return uint64(c) }
