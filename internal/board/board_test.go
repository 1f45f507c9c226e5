package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes_RoundTrip(t *testing.T) {
	// Deterministic non-trivial bit soup.
	buf := make([]byte, FieldLen)
	for i := range buf {
		buf[i] = byte(i*37 + 11)
	}

	b, err := FromBytes(buf)
	require.NoError(t, err)

	// Every bit read back through IsSet must reconstruct the buffer.
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			index := y*Width + x
			want := (buf[index/8]>>(index&7))&1 != 0
			assert.Equal(t, want, b.IsSet(x, y), "cell (%d,%d)", x, y)
		}
	}

	assert.Equal(t, buf, b.Bytes())
}

func TestFromBytes_CopiesBuffer(t *testing.T) {
	buf := make([]byte, FieldLen)
	buf[0] = 0xFF

	b, err := FromBytes(buf)
	require.NoError(t, err)

	buf[0] = 0x00
	assert.True(t, b.IsSet(0, 0), "mutating the caller's buffer must not reach the board")
}

func TestFromBytes_RejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, FieldLen - 1, FieldLen + 1, 2 * FieldLen} {
		b, err := FromBytes(make([]byte, n))
		assert.Nil(t, b, "length %d", n)
		require.Error(t, err, "length %d", n)
		assert.True(t, IsInvalidLength(err), "length %d", n)

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, ErrCodeInvalidFieldLength, fe.Code)
		assert.Equal(t, n, fe.Length)
	}
}

func TestFromBytes_RejectsNil(t *testing.T) {
	b, err := FromBytes(nil)
	assert.Nil(t, b)
	assert.True(t, IsInvalidLength(err))
}

func TestNew_AllDead(t *testing.T) {
	b := New()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.False(t, b.IsSet(x, y), "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, make([]byte, FieldLen), b.Bytes())
}

func TestClone_Independent(t *testing.T) {
	b := New()
	b.SetBit(2, 3, true)

	clone := b.Clone()
	assert.Equal(t, b.Bytes(), clone.Bytes())

	clone.SetBit(0, 0, true)
	assert.False(t, b.IsSet(0, 0), "mutating the clone must not reach the original")
	b.SetBit(9, 9, true)
	assert.False(t, clone.IsSet(9, 9))
}

func TestSetBit_Idempotent(t *testing.T) {
	b := New()

	b.SetBit(3, 7, true)
	once := b.Bytes()
	b.SetBit(3, 7, true)
	assert.Equal(t, once, b.Bytes(), "setting twice equals setting once")

	b.SetBit(3, 7, false)
	assert.Equal(t, make([]byte, FieldLen), b.Bytes(), "set then clear restores the empty board")
	b.SetBit(3, 7, false)
	assert.Equal(t, make([]byte, FieldLen), b.Bytes(), "clearing twice equals clearing once")
}

func TestSetBit_DoesNotDisturbNeighbors(t *testing.T) {
	b := New()
	b.SetBit(0, 0, true)
	b.SetBit(2, 0, true)
	b.SetBit(1, 0, true)
	b.SetBit(1, 0, false)

	assert.True(t, b.IsSet(0, 0))
	assert.False(t, b.IsSet(1, 0))
	assert.True(t, b.IsSet(2, 0))
}

func TestRows_Rendering(t *testing.T) {
	buf := make([]byte, FieldLen)
	buf[0] = 24 // bits 3 and 4 of row 0

	b, err := FromBytes(buf)
	require.NoError(t, err)

	rows := b.Rows()
	require.Len(t, rows, Height)
	assert.Equal(t, "...XX...........", rows[0])
	for y := 1; y < Height; y++ {
		assert.Equal(t, "................", rows[y], "row %d", y)
		assert.Len(t, rows[y], Width)
	}
}
