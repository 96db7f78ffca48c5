package blake2

import "encoding/binary"

// SumLong fills out with the variable-length BLAKE2b hash H' of data used
// by Argon2 (RFC 9106, section 3.3). Lengths up to Size are a single
// BLAKE2b of LE32(len(out)) || data. Longer outputs chain 64-byte digests
// and keep the first half of each, with the final link sized to whatever
// is left.
func SumLong(out, data []byte) {
	if len(out) == 0 {
		return
	}
	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(out)))

	if len(out) <= Size {
		h := newSized(len(out))
		h.Update(prefix[:])
		h.Update(data)
		v := h.Finalize()
		copy(out, v[:len(out)])
		return
	}

	h := New512()
	h.Update(prefix[:])
	h.Update(data)
	v := h.FinalizeReset()
	n := copy(out, v[:Size/2])

	for len(out)-n > Size {
		h.Update(v[:])
		v = h.FinalizeReset()
		n += copy(out[n:], v[:Size/2])
	}

	last := newSized(len(out) - n)
	last.Update(v[:])
	v = last.Finalize()
	copy(out[n:], v[:len(out)-n])
}

// newSized returns an unkeyed hasher with an n-byte digest, 1 <= n <= Size.
func newSized(n int) *Blake2b {
	h, err := New(Config{Size: n})
	if err != nil {
		panic("blake2: " + err.Error())
	}
	return h
}
