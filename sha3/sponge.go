package sha3

import (
	"github.com/opd-ai/go-digest"
	"github.com/opd-ai/go-digest/blockbuffer"
	"github.com/opd-ai/go-digest/internal/keccak"
)

// Domain separation bytes, with the first padding bit merged in.
const (
	dsKeccak = 0x01
	dsSHA3   = 0x06
	dsShake  = 0x1f
)

// Sponge rates in bytes. The block type of each core is a byte array of
// its rate.
const (
	rate224 = 144
	rate256 = 136
	rate384 = 104
	rate512 = 72
	rate128 = 168

	maxRate = rate128
)

// sponge is the absorbing half of a Keccak sponge whose rate is the size
// of B. The zero value is the initial state.
type sponge[B digest.Block] struct {
	a keccak.State
}

// UpdateBlocks XORs each block into the rate portion and permutes.
func (s *sponge[B]) UpdateBlocks(blocks []B) {
	for i := range blocks {
		s.a.XORIn(blockbuffer.Bytes(&blocks[i]))
		s.a.Permute()
	}
}

// Reset implements digest.Resetter.
func (s *sponge[B]) Reset() {
	s.a = keccak.State{}
}

// pad applies the domain separator and pad10*1 to the buffered tail and
// absorbs the final block.
func (s *sponge[B]) pad(buffer *blockbuffer.Buffer[B], ds byte) {
	pos := buffer.Pos()
	block := buffer.PadWithZeros()
	p := blockbuffer.Bytes(block)
	p[pos] ^= ds
	p[len(p)-1] ^= 0x80
	s.a.XORIn(p)
	s.a.Permute()
}

// squeeze pads and copies the first len(out) bytes of the state.
func (s *sponge[B]) squeeze(buffer *blockbuffer.Buffer[B], ds byte, out []byte) {
	s.pad(buffer, ds)
	s.a.CopyOut(out)
}

// Reader is the output stream of a SHAKE function. It owns a copy of the
// sponge, so it is unaffected by anything done to the hasher afterwards.
type Reader struct {
	a    keccak.State
	rate int
	buf  [maxRate]byte
	pos  int
}

func newReader(a keccak.State, rate int) *Reader {
	r := &Reader{a: a, rate: rate}
	r.a.CopyOut(r.buf[:rate])
	return r
}

// Read fills p with the next len(p) output bytes. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if r.pos == r.rate {
			r.a.Permute()
			r.a.CopyOut(r.buf[:r.rate])
			r.pos = 0
		}
		c := copy(p, r.buf[r.pos:r.rate])
		r.pos += c
		p = p[c:]
	}
	return n, nil
}

// Clone returns a reader that continues from the same position.
func (r *Reader) Clone() *Reader {
	c := *r
	return &c
}
