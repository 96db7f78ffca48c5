// Package sha2 provides SHA-224 and SHA-256 as block cores and as
// ready-to-use streaming hashers.
package sha2

import (
	"encoding/binary"
	"hash"

	"github.com/opd-ai/go-digest"
	"github.com/opd-ai/go-digest/blockbuffer"
)

const (
	// BlockSize is the SHA-224 and SHA-256 block size in bytes.
	BlockSize = 64

	// Size is the size of a SHA-256 digest in bytes.
	Size = 32

	// Size224 is the size of a SHA-224 digest in bytes.
	Size224 = 28
)

var (
	iv256 = [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	iv224 = [8]uint32{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
)

// state256 is the chaining value and block count shared by both variants.
type state256 struct {
	h      [8]uint32
	blocks uint64
}

// UpdateBlocks compresses each block into the chaining value.
func (s *state256) UpdateBlocks(blocks [][BlockSize]byte) {
	s.blocks += uint64(len(blocks))
	for i := range blocks {
		compress256(&s.h, &blocks[i])
	}
}

// finalize pads the buffered tail with the message bit length and writes
// the first len(out)/4 words of the chaining value.
func (s *state256) finalize(buffer *blockbuffer.Buffer[[BlockSize]byte], out []byte) {
	bitLen := (s.blocks*BlockSize + uint64(buffer.Pos())) * 8
	buffer.Len64PaddingBE(bitLen, func(block *[BlockSize]byte) {
		compress256(&s.h, block)
	})
	for i := 0; i < len(out)/4; i++ {
		binary.BigEndian.PutUint32(out[4*i:], s.h[i])
	}
}

// Core256 is the SHA-256 block core.
type Core256 struct {
	state256
}

// NewCore256 returns a SHA-256 core in its initial state.
func NewCore256() Core256 {
	return Core256{state256{h: iv256}}
}

// Reset implements digest.Resetter.
func (c *Core256) Reset() { *c = NewCore256() }

// OutputSize implements digest.FixedOutputCore.
func (c *Core256) OutputSize() int { return Size }

// FinalizeFixedCore implements digest.FixedOutputCore.
func (c *Core256) FinalizeFixedCore(buffer *blockbuffer.Buffer[[BlockSize]byte], out *[Size]byte) {
	c.finalize(buffer, out[:])
}

// Core224 is the SHA-224 block core.
type Core224 struct {
	state256
}

// NewCore224 returns a SHA-224 core in its initial state.
func NewCore224() Core224 {
	return Core224{state256{h: iv224}}
}

// Reset implements digest.Resetter.
func (c *Core224) Reset() { *c = NewCore224() }

// OutputSize implements digest.FixedOutputCore.
func (c *Core224) OutputSize() int { return Size224 }

// FinalizeFixedCore implements digest.FixedOutputCore.
func (c *Core224) FinalizeFixedCore(buffer *blockbuffer.Buffer[[BlockSize]byte], out *[Size224]byte) {
	c.finalize(buffer, out[:])
}

// SHA256 is a streaming SHA-256 hasher.
type SHA256 = digest.FixedWrapper[[BlockSize]byte, [Size]byte, Core256, *Core256]

// SHA224 is a streaming SHA-224 hasher.
type SHA224 = digest.FixedWrapper[[BlockSize]byte, [Size224]byte, Core224, *Core224]

var (
	_ hash.Hash = (*SHA256)(nil)
	_ hash.Hash = (*SHA224)(nil)
)

// New256 returns a new SHA-256 hasher.
func New256() *SHA256 {
	return digest.NewFixed[[BlockSize]byte, [Size]byte](NewCore256())
}

// New224 returns a new SHA-224 hasher.
func New224() *SHA224 {
	return digest.NewFixed[[BlockSize]byte, [Size224]byte](NewCore224())
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size]byte {
	return digest.Digest[[Size]byte](New256, data)
}

// Sum224 returns the SHA-224 digest of data.
func Sum224(data []byte) [Size224]byte {
	return digest.Digest[[Size224]byte](New224, data)
}
