// Package digest adapts block-oriented hash cores into streaming hashers.
//
// A block core only knows how to absorb whole fixed-size blocks and how to
// finalize itself given the unabsorbed tail. The wrappers in this package
// own a core plus a partial-block buffer and provide everything else:
// incremental updates of any length, fixed-size digests, extendable output
// streams, reset and reuse, io.Writer and hash.Hash.
//
// Which API a wrapper offers depends on the capabilities of its core:
//
//	UpdateCore                      -> CoreWrapper  (Update, Write)
//	FixedOutputCore + Resetter      -> FixedWrapper (Finalize, FinalizeReset, Sum, ...)
//	ExtendableOutputCore + Resetter -> XOFWrapper   (FinalizeXOF, FinalizeXOFReset, ...)
//
// Algorithm packages expose ready-made instantiations:
//
//	h := sha2.New256()
//	h.Update([]byte("ab"))
//	h.Update([]byte("c"))
//	sum := h.Finalize()
//
// The generic helpers below work with any hasher that has the right
// method set:
//
//	sum := digest.Digest[[32]byte](sha2.New256, data)
//
// Hashers are not safe for concurrent use. Use Clone to give each
// goroutine its own copy.
package digest

// Updater is anything that absorbs bytes.
type Updater interface {
	Update(data []byte)
}

// Hasher is the method set the fixed-output convenience functions are
// derived from. FixedWrapper satisfies it for every fixed-output core.
type Hasher[O Output, H any] interface {
	Updater
	FinalizeInto(out *O)
	Reset()
	OutputSize() int
	Clone() H
}

// ExtendableHasher is Hasher for extendable-output functions.
type ExtendableHasher[R XOFReader, H any] interface {
	Updater
	FinalizeXOF() R
	Reset()
	Clone() H
}

// New returns a hasher in its initial state.
func New[H any](newFn func() H) H {
	return newFn()
}

// Chain absorbs each of data into h in order and returns h, for fluent
// composition.
func Chain[H Updater](h H, data ...[]byte) H {
	for _, p := range data {
		h.Update(p)
	}
	return h
}

// Finalize returns the digest of everything h has absorbed. h is consumed.
func Finalize[O Output, H Hasher[O, H]](h H) O {
	var out O
	h.FinalizeInto(&out)
	return out
}

// FinalizeReset returns the digest of everything h has absorbed and resets
// h. It finalizes a clone, so it works for any Hasher whether or not its
// core can finalize without being consumed.
func FinalizeReset[O Output, H Hasher[O, H]](h H) O {
	out := Finalize[O](h.Clone())
	h.Reset()
	return out
}

// OutputSize returns the digest size of the hashers newFn builds.
func OutputSize[O Output, H Hasher[O, H]](newFn func() H) int {
	return newFn().OutputSize()
}

// Digest hashes data in one call.
func Digest[O Output, H Hasher[O, H]](newFn func() H, data []byte) O {
	h := newFn()
	h.Update(data)
	return Finalize[O](h)
}

// FinalizeXOFReset returns the output stream of everything h has absorbed
// and resets h, finalizing a clone.
func FinalizeXOFReset[R XOFReader, H ExtendableHasher[R, H]](h H) R {
	r := h.Clone().FinalizeXOF()
	h.Reset()
	return r
}

// DigestXOF hashes data in one call and fills out from the start of the
// output stream.
func DigestXOF[R XOFReader, H ExtendableHasher[R, H]](newFn func() H, data []byte, out []byte) {
	h := newFn()
	h.Update(data)
	readXOF(h.FinalizeXOF(), out)
}
