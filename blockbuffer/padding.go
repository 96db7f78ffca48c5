package blockbuffer

import "encoding/binary"

// flushFull compresses a lazily held full block so padding has room.
func (b *Buffer[B]) flushFull(compress func(block *B)) {
	if b.pos == len(b.buf) {
		compress(&b.buf)
		b.pos = 0
	}
}

// DigestPad terminates the buffered data with delim, zero-fills and writes
// suffix into the tail of the final block, spilling into one extra block if
// suffix does not fit. Each final block is passed to compress and the
// buffer is left empty.
func (b *Buffer[B]) DigestPad(delim byte, suffix []byte, compress func(block *B)) {
	if len(suffix) > len(b.buf) {
		panic("blockbuffer: padding suffix longer than block")
	}
	b.flushFull(compress)

	buf := Bytes(&b.buf)
	buf[b.pos] = delim
	clear(buf[b.pos+1:])
	if len(suffix) > len(buf)-b.pos-1 {
		compress(&b.buf)
		clear(buf)
	}
	copy(buf[len(buf)-len(suffix):], suffix)
	compress(&b.buf)
	b.pos = 0
}

// Len64PaddingBE applies Merkle–Damgård strengthening with a 64-bit
// big-endian message length in bits (SHA-1, SHA-256).
func (b *Buffer[B]) Len64PaddingBE(bitLen uint64, compress func(block *B)) {
	var suffix [8]byte
	binary.BigEndian.PutUint64(suffix[:], bitLen)
	b.DigestPad(0x80, suffix[:], compress)
}

// Len64PaddingLE is Len64PaddingBE with a little-endian length (MD5).
func (b *Buffer[B]) Len64PaddingLE(bitLen uint64, compress func(block *B)) {
	var suffix [8]byte
	binary.LittleEndian.PutUint64(suffix[:], bitLen)
	b.DigestPad(0x80, suffix[:], compress)
}

// Len128PaddingBE applies strengthening with a 128-bit big-endian length
// given as its high and low words (SHA-512).
func (b *Buffer[B]) Len128PaddingBE(hi, lo uint64, compress func(block *B)) {
	var suffix [16]byte
	binary.BigEndian.PutUint64(suffix[:8], hi)
	binary.BigEndian.PutUint64(suffix[8:], lo)
	b.DigestPad(0x80, suffix[:], compress)
}

// PadWithZeros zero-fills the block after the buffered bytes and returns
// it. The buffer position is reset, so the caller owns the final block
// until the next Digest or Reset. Call Pos first if the data length is
// needed.
func (b *Buffer[B]) PadWithZeros() *B {
	buf := Bytes(&b.buf)
	clear(buf[b.pos:])
	b.pos = 0
	return &b.buf
}
