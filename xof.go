package digest

import (
	"io"
	"strconv"
)

// XOFWrapper is the streaming front end of a resettable extendable-output
// core. It satisfies ExtendableHasher.
//
// The reader returned by FinalizeXOF or FinalizeXOFReset owns its state,
// so it stays valid after the wrapper is reset or discarded.
type XOFWrapper[B Block, R XOFReader, C any, PC XOFCorePtr[B, R, C]] struct {
	CoreWrapper[B, C, PC]
}

// NewXOF wraps an extendable-output core. core must be in its
// construction-time state.
func NewXOF[B Block, R XOFReader, C any, PC XOFCorePtr[B, R, C]](core C) *XOFWrapper[B, R, C, PC] {
	return &XOFWrapper[B, R, C, PC]{
		CoreWrapper: newCoreWrapper[B, C, PC](core),
	}
}

// FinalizeXOF returns the output reader and consumes the hasher.
func (w *XOFWrapper[B, R, C, PC]) FinalizeXOF() R {
	w.mustNotBeFinalized("FinalizeXOF")
	traceLog("finalize xof", w.buffer.Size(), w.buffer.Pos())
	r := PC(&w.core).FinalizeXOFCore(&w.buffer)
	w.finalized = true
	return r
}

// FinalizeXOFReset returns the output reader and resets the hasher.
func (w *XOFWrapper[B, R, C, PC]) FinalizeXOFReset() R {
	w.mustNotBeFinalized("FinalizeXOFReset")
	traceLog("finalize xof", w.buffer.Size(), w.buffer.Pos())
	r := PC(&w.core).FinalizeXOFCore(&w.buffer)
	w.Reset()
	return r
}

// Reset restores the hasher to its initial state.
func (w *XOFWrapper[B, R, C, PC]) Reset() {
	PC(&w.core).Reset()
	w.resetBuffer()
}

// Chain absorbs each of data in turn and returns w.
func (w *XOFWrapper[B, R, C, PC]) Chain(data ...[]byte) *XOFWrapper[B, R, C, PC] {
	for _, p := range data {
		w.Update(p)
	}
	return w
}

// Clone returns an independent copy of the hasher in its current state.
func (w *XOFWrapper[B, R, C, PC]) Clone() *XOFWrapper[B, R, C, PC] {
	c := *w
	return &c
}

// Sum appends the first n bytes of the output stream for the data absorbed
// so far to b. It finalizes a copy, so w can keep absorbing. It panics if n
// is negative.
func (w *XOFWrapper[B, R, C, PC]) Sum(b []byte, n int) []byte {
	if n < 0 {
		panic("digest: negative XOF output length " + strconv.Itoa(n))
	}
	d := *w
	r := d.FinalizeXOF()
	out := make([]byte, n)
	readXOF(r, out)
	return append(b, out...)
}

// readXOF fills out from r. Readers may return short counts, but an XOF
// stream never ends, so any error is a broken core.
func readXOF(r io.Reader, out []byte) {
	if _, err := io.ReadFull(r, out); err != nil {
		panic("digest: XOF reader failed: " + err.Error())
	}
}
