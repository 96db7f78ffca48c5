// Package chunkgen produces deterministic pseudo-random message data and
// chunk boundaries, so streaming tests can feed the same message to a
// hasher in many different splits and reproduce any failure from its seed.
package chunkgen

import (
	"github.com/opd-ai/go-digest/internal/reference"
)

// Generator is a deterministic byte stream based on Blake2b. It keeps a
// 64-byte state that is rehashed whenever it is used up.
type Generator struct {
	data [64]byte // Current Blake2b-512 output
	pos  int      // Position in current output (0-64)
}

// New creates a Generator whose state is the Blake2b-512 hash of seed.
func New(seed []byte) *Generator {
	return &Generator{
		data: reference.Blake2b512(seed),
	}
}

// generate replaces the state with its own hash.
func (g *Generator) generate() {
	g.data = reference.Blake2b512(g.data[:])
	g.pos = 0
}

// Byte returns the next pseudo-random byte.
func (g *Generator) Byte() byte {
	if g.pos >= len(g.data) {
		g.generate()
	}
	b := g.data[g.pos]
	g.pos++
	return b
}

// Uint32 returns the next pseudo-random uint32 in little-endian format.
func (g *Generator) Uint32() uint32 {
	b0 := uint32(g.Byte())
	b1 := uint32(g.Byte())
	b2 := uint32(g.Byte())
	b3 := uint32(g.Byte())

	return b0 | (b1 << 8) | (b2 << 16) | (b3 << 24)
}

// Intn returns a pseudo-random int in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic("chunkgen: Intn called with non-positive bound")
	}
	return int(g.Uint32() % uint32(n))
}

// Bytes returns n pseudo-random bytes.
func (g *Generator) Bytes(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = g.Byte()
	}
	return p
}

// Split cuts data into consecutive chunks of 0 to maxChunk bytes. Empty
// chunks are included and must not change a digest.
// Concatenating the result always gives back data.
func (g *Generator) Split(data []byte, maxChunk int) [][]byte {
	var chunks [][]byte
	for len(data) > 0 {
		n := g.Intn(maxChunk + 1)
		if n > len(data) {
			n = len(data)
		}
		chunks = append(chunks, data[:n])
		data = data[n:]
	}
	return chunks
}
