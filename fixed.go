package digest

import "unsafe"

// FixedWrapper is the streaming front end of a resettable fixed-output
// core. It implements hash.Hash and satisfies Hasher.
//
// Finalize and FinalizeInto consume the hasher: any further use other than
// Reset panics. FinalizeReset and FinalizeIntoReset leave it ready for a
// new message, and Sum leaves it untouched.
type FixedWrapper[B Block, O Output, C any, PC FixedCorePtr[B, O, C]] struct {
	CoreWrapper[B, C, PC]
}

// NewFixed wraps a fixed-output core. core must be in its construction-time
// state.
func NewFixed[B Block, O Output, C any, PC FixedCorePtr[B, O, C]](core C) *FixedWrapper[B, O, C, PC] {
	return &FixedWrapper[B, O, C, PC]{
		CoreWrapper: newCoreWrapper[B, C, PC](core),
	}
}

// FinalizeInto writes the digest of everything absorbed so far into out
// and consumes the hasher.
func (w *FixedWrapper[B, O, C, PC]) FinalizeInto(out *O) {
	w.mustNotBeFinalized("FinalizeInto")
	traceLog("finalize fixed", w.buffer.Size(), w.buffer.Pos())
	PC(&w.core).FinalizeFixedCore(&w.buffer, out)
	w.finalized = true
}

// FinalizeIntoReset writes the digest into out and resets the hasher so it
// can absorb an unrelated message.
func (w *FixedWrapper[B, O, C, PC]) FinalizeIntoReset(out *O) {
	w.mustNotBeFinalized("FinalizeIntoReset")
	traceLog("finalize fixed", w.buffer.Size(), w.buffer.Pos())
	PC(&w.core).FinalizeFixedCore(&w.buffer, out)
	w.Reset()
}

// Finalize returns the digest and consumes the hasher.
func (w *FixedWrapper[B, O, C, PC]) Finalize() O {
	var out O
	w.FinalizeInto(&out)
	return out
}

// FinalizeReset returns the digest and resets the hasher.
func (w *FixedWrapper[B, O, C, PC]) FinalizeReset() O {
	var out O
	w.FinalizeIntoReset(&out)
	return out
}

// Reset restores the hasher to its initial state. It may be called at any
// time, including to abandon a message part way through.
func (w *FixedWrapper[B, O, C, PC]) Reset() {
	PC(&w.core).Reset()
	w.resetBuffer()
}

// Chain absorbs each of data in turn and returns w.
func (w *FixedWrapper[B, O, C, PC]) Chain(data ...[]byte) *FixedWrapper[B, O, C, PC] {
	for _, p := range data {
		w.Update(p)
	}
	return w
}

// Clone returns an independent copy of the hasher in its current state.
func (w *FixedWrapper[B, O, C, PC]) Clone() *FixedWrapper[B, O, C, PC] {
	c := *w
	return &c
}

// OutputSize returns the digest size in bytes.
func (w *FixedWrapper[B, O, C, PC]) OutputSize() int {
	return PC(&w.core).OutputSize()
}

// Size implements hash.Hash.
func (w *FixedWrapper[B, O, C, PC]) Size() int {
	return w.OutputSize()
}

// Sum appends the digest of the data absorbed so far to b. It finalizes a
// copy, so w can keep absorbing.
func (w *FixedWrapper[B, O, C, PC]) Sum(b []byte) []byte {
	d := *w
	out := d.Finalize()
	return append(b, OutputBytes(&out)[:w.OutputSize()]...)
}

// OutputBytes returns a byte slice aliasing the digest array o.
func OutputBytes[O Output](o *O) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(o)), len(*o))
}
