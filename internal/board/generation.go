package board

// Generation is one board snapshot plus the external-clock metadata
// describing when it was produced.
//
// CurrentHeight is the clock reading observed when this generation was
// produced. PrevHeight is the reading observed at the previous distinct
// production event, or 0 if there was none. Repeated productions at the
// same height collapse: PrevHeight only advances when the clock has
// strictly moved since the parent was produced.
type Generation struct {
	Board         *Board
	CurrentHeight uint64
	PrevHeight    uint64
}

// NewGeneration wraps a freshly submitted board, stamping it with the
// current clock reading.
func NewGeneration(b *Board, clock Clock) Generation {
	return Generation{
		Board:         b,
		CurrentHeight: clock.Height(),
		PrevHeight:    0,
	}
}

// Step computes the successor generation without mutating g.
//
// Every cell's live neighbors are counted over the 3x3 block around it,
// minus the center. The enumeration shifts coordinates by +1 before the
// bounds check against [1, Width] x [1, Height] and subtracts 1 back
// before probing, so off-grid neighbors are simply never counted - the
// observable edge policy is "outside the grid is dead".
//
// Step is total: there are no error conditions over a well-formed
// generation and clock reading.
func (g Generation) Step(clock Clock) Generation {
	next := New()
	height := clock.Height()

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			bit := g.Board.IsSet(x, y)
			sum := 0
			for offY := 0; offY <= 2; offY++ {
				ny := y + offY
				for offX := 0; offX <= 2; offX++ {
					if offX == 1 && offY == 1 {
						continue
					}
					nx := x + offX
					if ny >= 1 && nx >= 1 && ny <= Height && nx <= Width {
						if g.Board.IsSet(nx-1, ny-1) {
							sum++
						}
					}
				}
			}
			// Historical form of the rule, kept verbatim. Equivalent to
			// survive-on-2-or-3 / born-on-3 for every reachable input.
			if bit && sum == 2 || sum == 3 {
				next.SetBit(x, y, true)
			}
		}
	}

	prev := g.PrevHeight
	if height != g.CurrentHeight {
		prev = g.CurrentHeight
	}
	return Generation{
		Board:         next,
		CurrentHeight: height,
		PrevHeight:    prev,
	}
}
