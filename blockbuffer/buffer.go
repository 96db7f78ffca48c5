// Package blockbuffer provides the partial-block queue that sits between a
// byte stream and a block-oriented compression function.
//
// A Buffer slices arbitrary input into whole blocks, hands them to a
// compression callback and keeps the remainder until more input arrives or
// the owner finalizes it with one of the padding helpers.
package blockbuffer

import (
	"fmt"
	"unsafe"
)

// Block is the set of block types a Buffer can be keyed to. The block
// length is part of the type, so a core that accepts []B can never be
// handed a partial block.
type Block interface {
	~[64]byte | ~[72]byte | ~[104]byte | ~[128]byte | ~[136]byte | ~[144]byte | ~[168]byte
}

// Kind selects when a full buffered block is handed to the compression
// function.
type Kind int

const (
	// Eager compresses a block as soon as it is complete. The buffer never
	// holds a full block between calls.
	Eager Kind = iota

	// Lazy keeps the last complete block until more input arrives. Cores
	// that must flag the final block (BLAKE2) need this.
	Lazy
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Eager:
		return "eager"
	case Lazy:
		return "lazy"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Buffer holds the bytes of an incomplete block.
type Buffer[B Block] struct {
	buf  B
	pos  int
	kind Kind
}

// New returns an empty buffer of the given kind.
func New[B Block](kind Kind) Buffer[B] {
	return Buffer[B]{kind: kind}
}

// Bytes returns a byte slice aliasing the block.
func Bytes[B Block](b *B) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(b)), len(*b))
}

// asBlocks reinterprets p, whose length must be a multiple of the block
// size, as a slice of blocks without copying.
func asBlocks[B Block](p []byte) []B {
	var zero B
	n := len(p) / len(zero)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*B)(unsafe.Pointer(unsafe.SliceData(p))), n)
}

// Size returns the block size in bytes.
func (b *Buffer[B]) Size() int { return len(b.buf) }

// Pos returns the number of buffered bytes.
func (b *Buffer[B]) Pos() int { return b.pos }

// Remaining returns how many bytes can be buffered before the block is full.
func (b *Buffer[B]) Remaining() int { return len(b.buf) - b.pos }

// Kind returns the buffering kind.
func (b *Buffer[B]) Kind() Kind { return b.kind }

// Reset discards the buffered bytes.
func (b *Buffer[B]) Reset() {
	var zero B
	b.buf = zero
	b.pos = 0
}

// Digest appends input to the buffer. Every complete block is passed to
// compress, either straight out of input or out of the buffer, and the
// remainder is kept. compress must not retain the slice it is given.
func (b *Buffer[B]) Digest(input []byte, compress func(blocks []B)) {
	if b.kind == Lazy {
		b.digestLazy(input, compress)
		return
	}

	buf := Bytes(&b.buf)
	rem := len(buf) - b.pos
	if len(input) < rem {
		b.pos += copy(buf[b.pos:], input)
		return
	}
	if b.pos != 0 {
		copy(buf[b.pos:], input[:rem])
		input = input[rem:]
		compress(unsafe.Slice(&b.buf, 1))
	}

	n := len(input) - len(input)%len(buf)
	if blocks := asBlocks[B](input[:n]); len(blocks) > 0 {
		compress(blocks)
	}
	b.pos = copy(buf, input[n:])
}

// digestLazy is Digest for the Lazy kind: a block is only compressed once
// at least one byte beyond it is known.
func (b *Buffer[B]) digestLazy(input []byte, compress func(blocks []B)) {
	buf := Bytes(&b.buf)
	rem := len(buf) - b.pos
	if len(input) <= rem {
		b.pos += copy(buf[b.pos:], input)
		return
	}
	if b.pos != 0 {
		copy(buf[b.pos:], input[:rem])
		input = input[rem:]
		compress(unsafe.Slice(&b.buf, 1))
	}

	// input is non-empty here; hold back its final 1..size bytes.
	n := (len(input) - 1) / len(buf) * len(buf)
	if blocks := asBlocks[B](input[:n]); len(blocks) > 0 {
		compress(blocks)
	}
	b.pos = copy(buf, input[n:])
}
