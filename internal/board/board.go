package board

// Board dimensions are compile-time constants. The packed arena length
// follows from them; changing either requires a storage migration.
const (
	Width  = 16
	Height = 16

	// FieldLen is the byte length of a packed board buffer.
	FieldLen = (Width / 8) * Height
)

// Glyphs used by Rows. Alive cells render as 'X', dead cells as '.'.
const (
	GlyphAlive = 'X'
	GlyphDead  = '.'
)

// Board is a bit-packed Width x Height cell grid.
//
// The zero value is a valid, empty board. Board is a value type with a
// fixed-size arena; copying a Board copies the cells.
type Board struct {
	field [FieldLen]byte
}

// New returns an empty board, all cells dead.
func New() *Board {
	return &Board{}
}

// FromBytes wraps a packed buffer as a board. The buffer must be exactly
// FieldLen bytes; anything else is rejected with INVALID_FIELD_LENGTH and
// no board is constructed. The buffer is copied, not aliased.
func FromBytes(b []byte) (*Board, error) {
	if len(b) != FieldLen {
		return nil, NewLengthError(len(b))
	}
	board := &Board{}
	copy(board.field[:], b)
	return board, nil
}

// Clone returns an independent copy of the board. Mutating the clone
// never reaches the original.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// Bytes returns a copy of the packed field buffer.
func (b *Board) Bytes() []byte {
	out := make([]byte, FieldLen)
	copy(out, b.field[:])
	return out
}

// IsSet reports whether cell (x, y) is alive.
//
// Coordinates must satisfy 0 <= x < Width, 0 <= y < Height. The step
// algorithm only probes in-range cells, so there is no bounds failure
// mode at this layer.
func (b *Board) IsSet(x, y int) bool {
	index := y*Width + x
	return (b.field[index/8]>>(index&7))&1 != 0
}

// SetBit sets or clears cell (x, y) in place.
func (b *Board) SetBit(x, y int, bit bool) {
	index := y*Width + x
	mask := byte(1) << (index & 7)
	if bit {
		b.field[index/8] |= mask
	} else {
		b.field[index/8] &^= mask
	}
}

// Rows renders the board as Height strings of Width glyphs each, top to
// bottom, leftmost glyph at x = 0. Pure formatting; feeding the result
// to a diagnostic sink is the caller's concern.
func (b *Board) Rows() []string {
	rows := make([]string, Height)
	line := make([]byte, Width)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.IsSet(x, y) {
				line[x] = GlyphAlive
			} else {
				line[x] = GlyphDead
			}
		}
		rows[y] = string(line)
	}
	return rows
}
