// Package sha3 provides the FIPS 202 SHA-3 hashes, legacy Keccak-256 and
// the SHAKE extendable-output functions as Keccak sponge block cores.
package sha3

import (
	"hash"

	"github.com/opd-ai/go-digest"
	"github.com/opd-ai/go-digest/blockbuffer"
)

// Core224 is the SHA3-224 block core. The zero value is ready to use.
type Core224 struct{ sponge[[rate224]byte] }

// OutputSize implements digest.FixedOutputCore.
func (c *Core224) OutputSize() int { return 28 }

// FinalizeFixedCore implements digest.FixedOutputCore.
func (c *Core224) FinalizeFixedCore(buffer *blockbuffer.Buffer[[rate224]byte], out *[28]byte) {
	c.squeeze(buffer, dsSHA3, out[:])
}

// Core256 is the SHA3-256 block core. The zero value is ready to use.
type Core256 struct{ sponge[[rate256]byte] }

// OutputSize implements digest.FixedOutputCore.
func (c *Core256) OutputSize() int { return 32 }

// FinalizeFixedCore implements digest.FixedOutputCore.
func (c *Core256) FinalizeFixedCore(buffer *blockbuffer.Buffer[[rate256]byte], out *[32]byte) {
	c.squeeze(buffer, dsSHA3, out[:])
}

// Core384 is the SHA3-384 block core. The zero value is ready to use.
type Core384 struct{ sponge[[rate384]byte] }

// OutputSize implements digest.FixedOutputCore.
func (c *Core384) OutputSize() int { return 48 }

// FinalizeFixedCore implements digest.FixedOutputCore.
func (c *Core384) FinalizeFixedCore(buffer *blockbuffer.Buffer[[rate384]byte], out *[48]byte) {
	c.squeeze(buffer, dsSHA3, out[:])
}

// Core512 is the SHA3-512 block core. The zero value is ready to use.
type Core512 struct{ sponge[[rate512]byte] }

// OutputSize implements digest.FixedOutputCore.
func (c *Core512) OutputSize() int { return 64 }

// FinalizeFixedCore implements digest.FixedOutputCore.
func (c *Core512) FinalizeFixedCore(buffer *blockbuffer.Buffer[[rate512]byte], out *[64]byte) {
	c.squeeze(buffer, dsSHA3, out[:])
}

// KeccakCore256 is the legacy Keccak-256 block core used by Ethereum. It
// differs from SHA3-256 only in its domain separator.
type KeccakCore256 struct{ sponge[[rate256]byte] }

// OutputSize implements digest.FixedOutputCore.
func (c *KeccakCore256) OutputSize() int { return 32 }

// FinalizeFixedCore implements digest.FixedOutputCore.
func (c *KeccakCore256) FinalizeFixedCore(buffer *blockbuffer.Buffer[[rate256]byte], out *[32]byte) {
	c.squeeze(buffer, dsKeccak, out[:])
}

type (
	// SHA3_224 is a streaming SHA3-224 hasher.
	SHA3_224 = digest.FixedWrapper[[rate224]byte, [28]byte, Core224, *Core224]
	// SHA3_256 is a streaming SHA3-256 hasher.
	SHA3_256 = digest.FixedWrapper[[rate256]byte, [32]byte, Core256, *Core256]
	// SHA3_384 is a streaming SHA3-384 hasher.
	SHA3_384 = digest.FixedWrapper[[rate384]byte, [48]byte, Core384, *Core384]
	// SHA3_512 is a streaming SHA3-512 hasher.
	SHA3_512 = digest.FixedWrapper[[rate512]byte, [64]byte, Core512, *Core512]
	// Keccak256 is a streaming legacy Keccak-256 hasher.
	Keccak256 = digest.FixedWrapper[[rate256]byte, [32]byte, KeccakCore256, *KeccakCore256]
)

var (
	_ hash.Hash = (*SHA3_224)(nil)
	_ hash.Hash = (*SHA3_256)(nil)
	_ hash.Hash = (*SHA3_384)(nil)
	_ hash.Hash = (*SHA3_512)(nil)
	_ hash.Hash = (*Keccak256)(nil)
)

// New224 returns a new SHA3-224 hasher.
func New224() *SHA3_224 { return digest.NewFixed[[rate224]byte, [28]byte](Core224{}) }

// New256 returns a new SHA3-256 hasher.
func New256() *SHA3_256 { return digest.NewFixed[[rate256]byte, [32]byte](Core256{}) }

// New384 returns a new SHA3-384 hasher.
func New384() *SHA3_384 { return digest.NewFixed[[rate384]byte, [48]byte](Core384{}) }

// New512 returns a new SHA3-512 hasher.
func New512() *SHA3_512 { return digest.NewFixed[[rate512]byte, [64]byte](Core512{}) }

// NewLegacyKeccak256 returns a new Keccak-256 hasher.
func NewLegacyKeccak256() *Keccak256 {
	return digest.NewFixed[[rate256]byte, [32]byte](KeccakCore256{})
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) [28]byte { return digest.Digest[[28]byte](New224, data) }

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [32]byte { return digest.Digest[[32]byte](New256, data) }

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) [48]byte { return digest.Digest[[48]byte](New384, data) }

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [64]byte { return digest.Digest[[64]byte](New512, data) }

// SumKeccak256 returns the legacy Keccak-256 digest of data.
func SumKeccak256(data []byte) [32]byte {
	return digest.Digest[[32]byte](NewLegacyKeccak256, data)
}
