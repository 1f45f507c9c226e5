// Package board implements the petri core: a fixed 16x16 Game of Life
// board packed one bit per cell, and the generation snapshots that wrap
// it with external-clock metadata.
//
// # Encoding
//
// A board is a 32-byte arena (FieldLen = Width/8 * Height), row-major.
// Cell (x, y) lives at linear index y*Width + x, stored at byte index/8,
// bit index%8, least-significant bit first. The arena length is fixed:
// FromBytes rejects any buffer whose length differs from FieldLen.
//
// # Stepping
//
// Generation.Step applies the life/death rule over a plain bounded 3x3
// scan. Neighbors falling off the grid count as dead - there is no
// wraparound. The cell rule is deliberately kept in its historical form:
//
//	alive && sum == 2 || sum == 3
//
// which is behavior-identical to the textbook "survive on 2 or 3, born
// on 3" rule, and is preserved verbatim for bit-exact regression parity
// with the original contract.
//
// # Clock
//
// The external tick source is injected through the Clock interface. Only
// a non-decreasing reading is required; two productions observed at the
// same height collapse into one PrevHeight hop.
package board
