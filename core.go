package digest

import (
	"io"

	"github.com/opd-ai/go-digest/blockbuffer"
)

// Block is the constraint for block types a core can consume. The block
// length is fixed by the array type.
type Block = blockbuffer.Block

// Output is the constraint for fixed-size digest arrays.
type Output interface {
	~[16]byte | ~[20]byte | ~[28]byte | ~[32]byte | ~[48]byte | ~[64]byte
}

// UpdateCore is implemented by block cores that absorb whole blocks.
//
// UpdateBlocks mutates the compression state by absorbing each block in
// order. It must not retain blocks.
type UpdateCore[B Block] interface {
	UpdateBlocks(blocks []B)
}

// Resetter is implemented by cores that can be restored to their
// construction-time state.
type Resetter interface {
	Reset()
}

// FixedOutputCore is implemented by cores producing a fixed-size digest.
//
// FinalizeFixedCore consumes the remaining data in buffer, applying the
// algorithm's padding through one of the buffer's padding helpers, and
// writes the digest into out. The core is left dirty: it must be Reset
// before it is used again. OutputSize reports how many leading bytes of out
// are meaningful.
type FixedOutputCore[B Block, O Output] interface {
	UpdateCore[B]
	OutputSize() int
	FinalizeFixedCore(buffer *blockbuffer.Buffer[B], out *O)
}

// XOFReader is the output stream of an extendable-output function. Read
// never fails and the stream never ends.
type XOFReader interface {
	io.Reader
}

// ExtendableOutputCore is implemented by extendable-output cores.
//
// FinalizeXOFCore consumes the remaining data in buffer and returns a
// reader that owns every piece of state it needs. The core is left dirty.
type ExtendableOutputCore[B Block, R XOFReader] interface {
	UpdateCore[B]
	FinalizeXOFCore(buffer *blockbuffer.Buffer[B]) R
}

// BufferKinder is implemented by cores that need a buffering kind other
// than blockbuffer.Eager.
type BufferKinder interface {
	BufferKind() blockbuffer.Kind
}

// UpdateCorePtr constrains PC to be *C with the update capability, so a
// wrapper can hold the core by value and still call its pointer methods.
type UpdateCorePtr[B Block, C any] interface {
	*C
	UpdateCore[B]
}

// FixedCorePtr is UpdateCorePtr for resettable fixed-output cores.
type FixedCorePtr[B Block, O Output, C any] interface {
	*C
	FixedOutputCore[B, O]
	Resetter
}

// XOFCorePtr is UpdateCorePtr for resettable extendable-output cores.
type XOFCorePtr[B Block, R XOFReader, C any] interface {
	*C
	ExtendableOutputCore[B, R]
	Resetter
}
