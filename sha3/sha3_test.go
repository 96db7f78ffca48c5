package sha3_test

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-digest"
	"github.com/opd-ai/go-digest/internal/chunkgen"
	"github.com/opd-ai/go-digest/internal/reference"
	"github.com/opd-ai/go-digest/sha3"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKnownVectors(t *testing.T) {
	sum := sha3.Sum256([]byte("abc"))
	assert.Equal(t, mustHex(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"), sum[:])

	sum = sha3.Sum256(nil)
	assert.Equal(t, mustHex(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"), sum[:])

	sum = sha3.SumKeccak256(nil)
	assert.Equal(t, mustHex(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"), sum[:])

	out := make([]byte, 32)
	sha3.ShakeSum128(out, nil)
	assert.Equal(t, mustHex(t, "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"), out)

	sha3.ShakeSum256(out, nil)
	assert.Equal(t, mustHex(t, "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f"), out)
}

func TestSplitUpdateABC(t *testing.T) {
	h := sha3.New256()
	h.Update([]byte("ab"))
	h.Update([]byte("c"))
	assert.Equal(t, sha3.Sum256([]byte("abc")), h.Finalize())
}

// TestMatchesReference checks every variant against golang.org/x/crypto/sha3
// for all lengths up to a little over two SHAKE128 blocks.
func TestMatchesReference(t *testing.T) {
	g := chunkgen.New([]byte("sha3 reference"))
	data := g.Bytes(2*168 + 3)

	for n := 0; n <= len(data); n++ {
		msg := data[:n]

		s224 := sha3.Sum224(msg)
		require.Equal(t, reference.SHA3(28, msg), s224[:], "SHA3-224 length %d", n)
		s256 := sha3.Sum256(msg)
		require.Equal(t, reference.SHA3(32, msg), s256[:], "SHA3-256 length %d", n)
		s384 := sha3.Sum384(msg)
		require.Equal(t, reference.SHA3(48, msg), s384[:], "SHA3-384 length %d", n)
		s512 := sha3.Sum512(msg)
		require.Equal(t, reference.SHA3(64, msg), s512[:], "SHA3-512 length %d", n)
		k256 := sha3.SumKeccak256(msg)
		require.Equal(t, reference.Keccak256(msg), k256[:], "Keccak-256 length %d", n)

		got, want := make([]byte, 200), make([]byte, 200)
		sha3.ShakeSum128(got, msg)
		reference.Shake128(want, msg)
		require.Equal(t, want, got, "SHAKE128 length %d", n)
		sha3.ShakeSum256(got, msg)
		reference.Shake256(want, msg)
		require.Equal(t, want, got, "SHAKE256 length %d", n)
	}
}

func TestChunkingInvariance(t *testing.T) {
	g := chunkgen.New([]byte("sha3 chunking"))
	data := g.Bytes(1000)
	want := sha3.Sum512(data)

	for _, maxChunk := range []int{1, 71, 72, 73, 500} {
		h := sha3.New512()
		for _, c := range g.Split(data, maxChunk) {
			h.Update(c)
		}
		assert.Equal(t, want, h.Finalize(), "maxChunk %d", maxChunk)
	}
}

func TestBlockEdges(t *testing.T) {
	data := bytes.Repeat([]byte{'x'}, 137)
	sums := map[[32]byte]bool{}
	for _, n := range []int{135, 136, 137} {
		sum := sha3.Sum256(data[:n])
		require.Equal(t, reference.SHA3(32, data[:n]), sum[:])
		sums[sum] = true
	}
	assert.Len(t, sums, 3)
}

func TestShakeReaderStreams(t *testing.T) {
	h := sha3.NewShake128()
	h.Update([]byte("stream me"))
	r := h.FinalizeXOF()

	// Reading in odd-sized pieces must match one big read.
	var pieces []byte
	for _, n := range []int{1, 10, 167, 168, 169, 3} {
		p := make([]byte, n)
		_, err := io.ReadFull(r, p)
		require.NoError(t, err)
		pieces = append(pieces, p...)
	}

	whole := make([]byte, len(pieces))
	reference.Shake128(whole, []byte("stream me"))
	assert.Equal(t, whole, pieces)

	// Consecutive reads move forward through the stream.
	a, b := make([]byte, 32), make([]byte, 32)
	r.Read(a)
	r.Read(b)
	assert.NotEqual(t, a, b)
}

func TestShakeReaderOutlivesReset(t *testing.T) {
	h := sha3.NewShake256()
	h.Update([]byte("abc"))
	r := h.FinalizeXOFReset()

	h.Update([]byte("something else entirely"))
	_ = h.FinalizeXOFReset()

	got := make([]byte, 100)
	r.Read(got)
	want := make([]byte, 100)
	reference.Shake256(want, []byte("abc"))
	assert.Equal(t, want, got)
}

func TestShakeDeterministicAcrossInstances(t *testing.T) {
	a := sha3.NewShake128().Chain([]byte("same input")).FinalizeXOF()
	b := sha3.NewShake128().Chain([]byte("same"), []byte(" input")).FinalizeXOF()

	pa, pb := make([]byte, 500), make([]byte, 500)
	a.Read(pa)
	b.Read(pb)
	assert.Equal(t, pa, pb)
}

func TestReaderClone(t *testing.T) {
	r := sha3.NewShake256().FinalizeXOF()
	skip := make([]byte, 50)
	r.Read(skip)

	c := r.Clone()
	p1, p2 := make([]byte, 200), make([]byte, 200)
	r.Read(p1)
	c.Read(p2)
	assert.Equal(t, p1, p2)
}

func TestXOFSumLeavesHasherUsable(t *testing.T) {
	h := sha3.NewShake128()
	h.Update([]byte("ab"))
	first := h.Sum(nil, 32)
	h.Update([]byte("c"))

	want := make([]byte, 32)
	reference.Shake128(want, []byte("ab"))
	assert.Equal(t, want, first)

	reference.Shake128(want, []byte("abc"))
	assert.Equal(t, want, h.Sum([]byte{}, 32))
}

func TestGenericXOFFinalizeReset(t *testing.T) {
	h := sha3.NewShake256()
	h.Update([]byte("abc"))
	r := digest.FinalizeXOFReset[*sha3.Reader](h)

	got := make([]byte, 64)
	r.Read(got)
	want := make([]byte, 64)
	reference.Shake256(want, []byte("abc"))
	assert.Equal(t, want, got)

	reference.Shake256(want, nil)
	assert.Equal(t, want, h.Sum(nil, 64))
}

func TestFinalizedXOFPanicsUntilReset(t *testing.T) {
	h := sha3.NewShake128()
	_ = h.FinalizeXOF()
	assert.Panics(t, func() { h.Update([]byte("x")) })
	assert.Panics(t, func() { h.FinalizeXOF() })

	h.Reset()
	assert.NotPanics(t, func() { h.Update([]byte("x")) })
}
