package digest

import (
	"unsafe"

	"github.com/opd-ai/go-digest/blockbuffer"
)

// CoreWrapper owns a block core and the buffer holding its unabsorbed
// tail. It turns a core that only understands whole blocks into an
// incremental byte sink. FixedWrapper and XOFWrapper build the finalizing
// APIs on top of it.
//
// The core is held by value, so copying a CoreWrapper duplicates the whole
// hashing state.
type CoreWrapper[B Block, C any, PC UpdateCorePtr[B, C]] struct {
	core      C
	buffer    blockbuffer.Buffer[B]
	finalized bool
}

// NewCoreWrapper wraps core with an empty buffer of the kind the core asks
// for.
func NewCoreWrapper[B Block, C any, PC UpdateCorePtr[B, C]](core C) *CoreWrapper[B, C, PC] {
	w := newCoreWrapper[B, C, PC](core)
	return &w
}

func newCoreWrapper[B Block, C any, PC UpdateCorePtr[B, C]](core C) CoreWrapper[B, C, PC] {
	kind := blockbuffer.Eager
	if k, ok := any(PC(&core)).(BufferKinder); ok {
		kind = k.BufferKind()
	}
	return CoreWrapper[B, C, PC]{
		core:   core,
		buffer: blockbuffer.New[B](kind),
	}
}

// Update absorbs data. Whole blocks go to the core immediately; fewer
// than one block's worth of bytes stay buffered. Empty input is a no-op.
func (w *CoreWrapper[B, C, PC]) Update(data []byte) {
	w.mustNotBeFinalized("Update")
	if len(data) == 0 {
		return
	}
	core := PC(&w.core)
	w.buffer.Digest(data, core.UpdateBlocks)
}

// Write implements io.Writer. It never fails.
func (w *CoreWrapper[B, C, PC]) Write(p []byte) (int, error) {
	w.Update(p)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (w *CoreWrapper[B, C, PC]) WriteString(s string) (int, error) {
	w.Update(unsafe.Slice(unsafe.StringData(s), len(s)))
	return len(s), nil
}

// BlockSize returns the core's block size in bytes.
func (w *CoreWrapper[B, C, PC]) BlockSize() int {
	return w.buffer.Size()
}

// Buffered returns the number of bytes waiting for a full block.
func (w *CoreWrapper[B, C, PC]) Buffered() int {
	return w.buffer.Pos()
}

func (w *CoreWrapper[B, C, PC]) mustNotBeFinalized(op string) {
	if w.finalized {
		panic("digest: " + op + " called on finalized hasher; call Reset first")
	}
}

// resetBuffer restores the buffer and clears the finalized mark once the
// caller has reset the core.
func (w *CoreWrapper[B, C, PC]) resetBuffer() {
	w.buffer.Reset()
	w.finalized = false
	traceLog("reset", w.buffer.Size(), 0)
}
