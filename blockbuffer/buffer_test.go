package blockbuffer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector records every block handed to the compression callback.
type collector struct {
	data  []byte
	calls int
}

func (c *collector) compress(blocks [][64]byte) {
	c.calls++
	for i := range blocks {
		c.data = append(c.data, blocks[i][:]...)
	}
}

func (c *collector) compressOne(block *[64]byte) {
	c.calls++
	c.data = append(c.data, block[:]...)
}

func sequence(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7 + 3)
	}
	return p
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "eager", Eager.String())
	assert.Equal(t, "lazy", Lazy.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestBufferEagerSplitsWholeBlocks(t *testing.T) {
	tests := []struct {
		name       string
		chunks     []int
		wantBlocks int
		wantPos    int
	}{
		{"empty", []int{0}, 0, 0},
		{"short", []int{10}, 0, 10},
		{"one_less", []int{63}, 0, 63},
		{"exact", []int{64}, 1, 0},
		{"one_more", []int{65}, 1, 1},
		{"two_chunks_fill", []int{30, 34}, 1, 0},
		{"many_chunks", []int{1, 2, 3, 100, 7, 64, 200}, 5, 57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, n := range tt.chunks {
				total += n
			}
			input := sequence(total)

			var c collector
			b := New[[64]byte](Eager)
			off := 0
			for _, n := range tt.chunks {
				b.Digest(input[off:off+n], c.compress)
				off += n
			}

			require.Equal(t, tt.wantBlocks*64, len(c.data))
			assert.Equal(t, tt.wantPos, b.Pos())
			assert.Less(t, b.Pos(), b.Size())
			// c.data stays nil until the first compression.
			assert.True(t, bytes.Equal(input[:len(c.data)], c.data), "compressed bytes differ from input prefix")

			buf := Bytes(&b.buf)
			assert.True(t, bytes.Equal(input[len(c.data):], buf[:b.Pos()]), "buffered bytes differ from input tail")
		})
	}
}

func TestBufferEmptyInputIsNoop(t *testing.T) {
	var c collector
	b := New[[64]byte](Eager)
	b.Digest([]byte("abc"), c.compress)
	before := b

	b.Digest(nil, c.compress)
	b.Digest([]byte{}, c.compress)

	assert.Equal(t, before, b)
	assert.Zero(t, c.calls)
}

func TestBufferLazyHoldsFullBlock(t *testing.T) {
	var c collector
	b := New[[64]byte](Lazy)

	b.Digest(sequence(64), c.compress)
	assert.Zero(t, c.calls, "lazy buffer must not compress the only block")
	assert.Equal(t, 64, b.Pos())

	b.Digest([]byte{0xff}, c.compress)
	assert.Equal(t, 64, len(c.data))
	assert.Equal(t, 1, b.Pos())

	c = collector{}
	b = New[[64]byte](Lazy)
	b.Digest(sequence(192), c.compress)
	assert.Equal(t, 128, len(c.data))
	assert.Equal(t, 64, b.Pos())
}

func TestBufferReset(t *testing.T) {
	var c collector
	b := New[[64]byte](Lazy)
	b.Digest(sequence(40), c.compress)
	b.Reset()

	assert.Zero(t, b.Pos())
	assert.Equal(t, Lazy, b.Kind())
	assert.Equal(t, New[[64]byte](Lazy), b)
}

func TestLen64PaddingBE(t *testing.T) {
	tests := []struct {
		name      string
		pos       int
		wantCalls int
	}{
		{"empty", 0, 1},
		{"fits", 55, 1},
		{"spills", 56, 2},
		{"almost_full", 63, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink, c collector
			b := New[[64]byte](Eager)
			b.Digest(sequence(tt.pos), sink.compress)

			b.Len64PaddingBE(uint64(tt.pos)*8, c.compressOne)
			require.Equal(t, tt.wantCalls, c.calls)
			require.Equal(t, tt.wantCalls*64, len(c.data))

			assert.Equal(t, sequence(tt.pos), c.data[:tt.pos])
			assert.Equal(t, byte(0x80), c.data[tt.pos])
			tail := c.data[len(c.data)-8:]
			want := []byte{0, 0, 0, 0, 0, 0, byte(tt.pos * 8 >> 8), byte(tt.pos * 8)}
			assert.Equal(t, want, tail)
			assert.True(t, bytes.Count(c.data[tt.pos+1:len(c.data)-8], []byte{0}) == len(c.data)-8-tt.pos-1)
			assert.Zero(t, b.Pos())
		})
	}
}

func TestLen64PaddingLE(t *testing.T) {
	var c collector
	b := New[[64]byte](Eager)
	b.Digest([]byte("abc"), c.compress)
	b.Len64PaddingLE(24, c.compressOne)

	require.Equal(t, 64, len(c.data))
	assert.Equal(t, []byte{24, 0, 0, 0, 0, 0, 0, 0}, c.data[56:])
}

func TestLen128PaddingBE(t *testing.T) {
	var data []byte
	b := New[[128]byte](Eager)
	b.Digest(sequence(111), func([][128]byte) { t.Fatal("unexpected compression") })
	b.Len128PaddingBE(1, 888, func(block *[128]byte) { data = append(data, block[:]...) })

	require.Equal(t, 128, len(data))
	assert.Equal(t, byte(0x80), data[111])
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, data[112:120])
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x03, 0x78}, data[120:])
}

func TestDigestPadFlushesLazyFullBlock(t *testing.T) {
	var sink, c collector
	b := New[[64]byte](Lazy)
	b.Digest(sequence(64), sink.compress)

	b.DigestPad(0x01, nil, c.compressOne)
	require.Equal(t, 2, c.calls)
	assert.Equal(t, sequence(64), c.data[:64])
	assert.Equal(t, byte(0x01), c.data[64])
}

func TestDigestPadSuffixTooLong(t *testing.T) {
	b := New[[64]byte](Eager)
	assert.Panics(t, func() {
		b.DigestPad(0x80, make([]byte, 65), func(*[64]byte) {})
	})
}

func TestPadWithZeros(t *testing.T) {
	var c collector
	b := New[[64]byte](Eager)
	b.Digest(sequence(70), c.compress)
	b.Digest([]byte{9, 9}, c.compress)

	block := b.PadWithZeros()
	want := make([]byte, 64)
	copy(want, append(sequence(70)[64:], 9, 9))
	assert.Equal(t, want, block[:])
	assert.Zero(t, b.Pos())
}
