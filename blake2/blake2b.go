// Package blake2 provides BLAKE2b as a block core, with keyed hashing and
// variable output size, and as ready-to-use streaming hashers.
//
// BLAKE2b must know which block is the last one when it compresses it, so
// its core asks the wrapper for lazy buffering: a full block is held back
// until at least one more byte arrives.
package blake2

import (
	"encoding/binary"
	"hash"

	"github.com/pkg/errors"

	"github.com/opd-ai/go-digest"
	"github.com/opd-ai/go-digest/blockbuffer"
)

const (
	// BlockSize is the BLAKE2b block size in bytes.
	BlockSize = 128

	// Size is the maximum (and BLAKE2b-512) digest size in bytes.
	Size = 64

	// Size256 is the BLAKE2b-256 digest size in bytes.
	Size256 = 32

	// MaxKeySize is the longest key BLAKE2b accepts, in bytes.
	MaxKeySize = 64
)

// Config specifies the BLAKE2b parameters.
type Config struct {
	// Size is the digest size in bytes, 1 to 64.
	Size int

	// Key turns the hash into a MAC when non-empty. At most 64 bytes.
	Key []byte
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size < 1 || c.Size > Size {
		return errors.Errorf("blake2: invalid digest size %d, must be between 1 and %d", c.Size, Size)
	}
	if len(c.Key) > MaxKeySize {
		return errors.Errorf("blake2: key of %d bytes exceeds %d", len(c.Key), MaxKeySize)
	}
	return nil
}

// Core is the BLAKE2b block core.
type Core struct {
	h          [8]uint64
	t          [2]uint64 // bytes compressed so far
	size       int
	key        [BlockSize]byte
	keyLen     int
	keyPending bool // key block not compressed yet
}

// NewCore returns a core for cfg. It does not validate cfg.
func NewCore(cfg Config) Core {
	c := Core{size: cfg.Size, keyLen: len(cfg.Key)}
	copy(c.key[:], cfg.Key)
	c.Reset()
	return c
}

// Reset implements digest.Resetter. The key is kept.
func (c *Core) Reset() {
	c.h = iv
	c.h[0] ^= 0x01010000 ^ uint64(c.keyLen)<<8 ^ uint64(c.size)
	c.t = [2]uint64{}
	c.keyPending = c.keyLen > 0
}

// BufferKind implements digest.BufferKinder.
func (c *Core) BufferKind() blockbuffer.Kind {
	return blockbuffer.Lazy
}

// OutputSize implements digest.FixedOutputCore.
func (c *Core) OutputSize() int { return c.size }

func (c *Core) increment(n uint64) {
	c.t[0] += n
	if c.t[0] < n {
		c.t[1]++
	}
}

// UpdateBlocks implements digest.UpdateCore. None of the blocks is the
// final one; the lazy buffer guarantees that.
func (c *Core) UpdateBlocks(blocks [][BlockSize]byte) {
	if c.keyPending {
		c.keyPending = false
		c.increment(BlockSize)
		compress(&c.h, c.t, &c.key, false)
	}
	for i := range blocks {
		c.increment(BlockSize)
		compress(&c.h, c.t, &blocks[i], false)
	}
}

// FinalizeFixedCore implements digest.FixedOutputCore. Bytes of out past
// OutputSize are left zero.
func (c *Core) FinalizeFixedCore(buffer *blockbuffer.Buffer[[BlockSize]byte], out *[Size]byte) {
	c.finalize(buffer, out[:c.size])
}

func (c *Core) finalize(buffer *blockbuffer.Buffer[[BlockSize]byte], out []byte) {
	pos := buffer.Pos()
	if c.keyPending {
		c.keyPending = false
		c.increment(BlockSize)
		if pos == 0 {
			// A keyed hash of the empty message: the key block is last.
			compress(&c.h, c.t, &c.key, true)
			c.output(out)
			return
		}
		compress(&c.h, c.t, &c.key, false)
	}

	block := buffer.PadWithZeros()
	c.increment(uint64(pos))
	compress(&c.h, c.t, block, true)
	c.output(out)
}

func (c *Core) output(out []byte) {
	var full [Size]byte
	for i, v := range c.h {
		binary.LittleEndian.PutUint64(full[8*i:], v)
	}
	copy(out, full[:])
}

// Core256 is the BLAKE2b-256 block core.
type Core256 struct {
	Core
}

// FinalizeFixedCore implements digest.FixedOutputCore.
func (c *Core256) FinalizeFixedCore(buffer *blockbuffer.Buffer[[BlockSize]byte], out *[Size256]byte) {
	c.finalize(buffer, out[:])
}

type (
	// Blake2b is a streaming BLAKE2b hasher with a digest of up to 64
	// bytes.
	Blake2b = digest.FixedWrapper[[BlockSize]byte, [Size]byte, Core, *Core]

	// Blake2b256 is a streaming BLAKE2b-256 hasher.
	Blake2b256 = digest.FixedWrapper[[BlockSize]byte, [Size256]byte, Core256, *Core256]
)

var (
	_ hash.Hash = (*Blake2b)(nil)
	_ hash.Hash = (*Blake2b256)(nil)
)

// New returns a BLAKE2b hasher configured by cfg. Finalize returns a
// 64-byte array of which the first cfg.Size bytes are the digest; Sum
// appends exactly cfg.Size bytes.
func New(cfg Config) (*Blake2b, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return digest.NewFixed[[BlockSize]byte, [Size]byte](NewCore(cfg)), nil
}

// New512 returns an unkeyed BLAKE2b-512 hasher.
func New512() *Blake2b {
	return digest.NewFixed[[BlockSize]byte, [Size]byte](NewCore(Config{Size: Size}))
}

// New256 returns an unkeyed BLAKE2b-256 hasher.
func New256() *Blake2b256 {
	return digest.NewFixed[[BlockSize]byte, [Size256]byte](Core256{NewCore(Config{Size: Size256})})
}

// Sum512 returns the BLAKE2b-512 digest of data.
func Sum512(data []byte) [Size]byte {
	return digest.Digest[[Size]byte](New512, data)
}

// Sum256 returns the BLAKE2b-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	return digest.Digest[[Size256]byte](New256, data)
}
