// Package multihash produces self-describing multihash digests and CIDs
// using the hashers in this module.
package multihash

import (
	"bytes"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"
	mh "github.com/multiformats/go-multihash"
	"github.com/pkg/errors"

	"github.com/opd-ai/go-digest"
	"github.com/opd-ai/go-digest/blake2"
	"github.com/opd-ai/go-digest/sha2"
	"github.com/opd-ai/go-digest/sha3"
)

// ErrUnknownCode is returned by Lookup for codes without a hasher here.
var ErrUnknownCode = errors.New("multihash: no hasher for code")

// Hasher computes multihash digests of one algorithm.
type Hasher interface {
	Code() multicodec.Code
	Size() uint64
	Sum(data []byte) (Digest, error)
}

// Digest is a raw digest together with its multihash encoding.
type Digest interface {
	Code() uint64
	Size() uint64
	Digest() []byte
	Bytes() []byte
}

type encoded struct {
	code   uint64
	size   uint64
	digest []byte
	bytes  []byte
}

func (d *encoded) Code() uint64   { return d.code }
func (d *encoded) Size() uint64   { return d.size }
func (d *encoded) Digest() []byte { return d.digest }
func (d *encoded) Bytes() []byte  { return d.bytes }

// NewDigest wraps a digest and its multihash bytes.
func NewDigest(code, size uint64, sum, mhBytes []byte) Digest {
	return &encoded{code: code, size: size, digest: sum, bytes: mhBytes}
}

type hasher struct {
	code multicodec.Code
	size uint64
	sum  func(data []byte) []byte
}

func (h hasher) Code() multicodec.Code { return h.code }

func (h hasher) Size() uint64 { return h.size }

func (h hasher) Sum(data []byte) (Digest, error) {
	sum := h.sum(data)
	enc, err := mh.Encode(sum, uint64(h.code))
	if err != nil {
		return nil, errors.Wrapf(err, "multihash: encode %s", h.code)
	}
	return NewDigest(uint64(h.code), h.size, sum, enc), nil
}

// fixed adapts a fixed-output constructor to a sum function.
func fixed[O digest.Output, H digest.Hasher[O, H]](newFn func() H) func([]byte) []byte {
	size := newFn().OutputSize()
	return func(data []byte) []byte {
		out := digest.Digest[O](newFn, data)
		return append([]byte(nil), digest.OutputBytes(&out)[:size]...)
	}
}

func shake(n int, sum func(out, data []byte)) func([]byte) []byte {
	return func(data []byte) []byte {
		out := make([]byte, n)
		sum(out, data)
		return out
	}
}

// Hashers for every algorithm with an assigned multicodec code. SHAKE
// digests use the conventional 32 and 64 byte lengths.
var (
	SHA2_224   Hasher = hasher{multicodec.Sha2_224, sha2.Size224, fixed[[28]byte](sha2.New224)}
	SHA2_256   Hasher = hasher{multicodec.Sha2_256, sha2.Size, fixed[[32]byte](sha2.New256)}
	SHA3_224   Hasher = hasher{multicodec.Sha3_224, 28, fixed[[28]byte](sha3.New224)}
	SHA3_256   Hasher = hasher{multicodec.Sha3_256, 32, fixed[[32]byte](sha3.New256)}
	SHA3_384   Hasher = hasher{multicodec.Sha3_384, 48, fixed[[48]byte](sha3.New384)}
	SHA3_512   Hasher = hasher{multicodec.Sha3_512, 64, fixed[[64]byte](sha3.New512)}
	Keccak256  Hasher = hasher{multicodec.Keccak256, 32, fixed[[32]byte](sha3.NewLegacyKeccak256)}
	Shake128   Hasher = hasher{multicodec.Shake128, 32, shake(32, sha3.ShakeSum128)}
	Shake256   Hasher = hasher{multicodec.Shake256, 64, shake(64, sha3.ShakeSum256)}
	Blake2b256 Hasher = hasher{multicodec.Blake2b256, blake2.Size256, fixed[[32]byte](blake2.New256)}
	Blake2b512 Hasher = hasher{multicodec.Blake2b512, blake2.Size, fixed[[64]byte](blake2.New512)}
)

var byCode = map[multicodec.Code]Hasher{}

func init() {
	for _, h := range []Hasher{
		SHA2_224, SHA2_256,
		SHA3_224, SHA3_256, SHA3_384, SHA3_512,
		Keccak256, Shake128, Shake256,
		Blake2b256, Blake2b512,
	} {
		byCode[h.Code()] = h
	}
}

// Lookup returns the hasher registered for code.
func Lookup(code multicodec.Code) (Hasher, error) {
	h, ok := byCode[code]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCode, "code %s", code)
	}
	return h, nil
}

// Sum hashes data with the algorithm for code and returns the encoded
// multihash.
func Sum(data []byte, code multicodec.Code) (mh.Multihash, error) {
	h, err := Lookup(code)
	if err != nil {
		return nil, err
	}
	d, err := h.Sum(data)
	if err != nil {
		return nil, err
	}
	return mh.Multihash(d.Bytes()), nil
}

// SumCID returns a CIDv1 for data under the given content codec, for
// example multicodec.Raw.
func SumCID(h Hasher, codec multicodec.Code, data []byte) (cid.Cid, error) {
	d, err := h.Sum(data)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(uint64(codec), mh.Multihash(d.Bytes())), nil
}

// Verify decodes m, rehashes data with the algorithm it names and reports
// whether the digests match.
func Verify(m mh.Multihash, data []byte) error {
	dec, err := mh.Decode(m)
	if err != nil {
		return errors.Wrap(err, "multihash: decode")
	}
	h, err := Lookup(multicodec.Code(dec.Code))
	if err != nil {
		return err
	}
	if uint64(dec.Length) != h.Size() {
		return errors.Errorf("multihash: %s digest length %d, want %d", h.Code(), dec.Length, h.Size())
	}
	d, err := h.Sum(data)
	if err != nil {
		return err
	}
	if !bytes.Equal(d.Digest(), dec.Digest) {
		return errors.Errorf("multihash: %s digest mismatch", h.Code())
	}
	return nil
}
