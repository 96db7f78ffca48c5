package sha3

import (
	"github.com/opd-ai/go-digest"
	"github.com/opd-ai/go-digest/blockbuffer"
)

// Shake128Core is the SHAKE128 block core. The zero value is ready to use.
type Shake128Core struct{ sponge[[rate128]byte] }

// FinalizeXOFCore implements digest.ExtendableOutputCore.
func (c *Shake128Core) FinalizeXOFCore(buffer *blockbuffer.Buffer[[rate128]byte]) *Reader {
	c.pad(buffer, dsShake)
	return newReader(c.a, rate128)
}

// Shake256Core is the SHAKE256 block core. The zero value is ready to use.
type Shake256Core struct{ sponge[[rate256]byte] }

// FinalizeXOFCore implements digest.ExtendableOutputCore.
func (c *Shake256Core) FinalizeXOFCore(buffer *blockbuffer.Buffer[[rate256]byte]) *Reader {
	c.pad(buffer, dsShake)
	return newReader(c.a, rate256)
}

type (
	// Shake128 is a streaming SHAKE128 hasher.
	Shake128 = digest.XOFWrapper[[rate128]byte, *Reader, Shake128Core, *Shake128Core]
	// Shake256 is a streaming SHAKE256 hasher.
	Shake256 = digest.XOFWrapper[[rate256]byte, *Reader, Shake256Core, *Shake256Core]
)

// NewShake128 returns a new SHAKE128 hasher.
func NewShake128() *Shake128 {
	return digest.NewXOF[[rate128]byte, *Reader](Shake128Core{})
}

// NewShake256 returns a new SHAKE256 hasher.
func NewShake256() *Shake256 {
	return digest.NewXOF[[rate256]byte, *Reader](Shake256Core{})
}

// ShakeSum128 fills out with SHAKE128 output for data.
func ShakeSum128(out, data []byte) {
	digest.DigestXOF[*Reader](NewShake128, data, out)
}

// ShakeSum256 fills out with SHAKE256 output for data.
func ShakeSum256(out, data []byte) {
	digest.DigestXOF[*Reader](NewShake256, data, out)
}
