package multihash

import (
	"encoding/hex"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"
	mh "github.com/multiformats/go-multihash"
	_ "github.com/multiformats/go-multihash/register/all"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-digest/internal/chunkgen"
)

// TestMatchesGoMultihash checks every hasher whose code go-multihash can
// also compute.
func TestMatchesGoMultihash(t *testing.T) {
	cases := []struct {
		h    Hasher
		code uint64
	}{
		{SHA2_256, mh.SHA2_256},
		{SHA3_224, mh.SHA3_224},
		{SHA3_256, mh.SHA3_256},
		{SHA3_384, mh.SHA3_384},
		{SHA3_512, mh.SHA3_512},
		{Keccak256, mh.KECCAK_256},
		{Shake128, mh.SHAKE_128},
		{Shake256, mh.SHAKE_256},
		{Blake2b256, mh.BLAKE2B_MIN + 31},
		{Blake2b512, mh.BLAKE2B_MAX},
	}

	gen := chunkgen.New([]byte("multihash"))
	inputs := [][]byte{nil, []byte("abc"), gen.Bytes(1000)}

	for _, tc := range cases {
		t.Run(tc.h.Code().String(), func(t *testing.T) {
			assert.Equal(t, tc.code, uint64(tc.h.Code()))
			for _, in := range inputs {
				want, err := mh.Sum(in, tc.code, -1)
				require.NoError(t, err)

				d, err := tc.h.Sum(in)
				require.NoError(t, err)
				assert.Equal(t, []byte(want), d.Bytes())
				assert.Equal(t, tc.code, d.Code())
				assert.Equal(t, tc.h.Size(), d.Size())
				assert.Len(t, d.Digest(), int(d.Size()))
			}
		})
	}
}

func TestSHA2_224Encoding(t *testing.T) {
	d, err := SHA2_224.Sum([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7", hex.EncodeToString(d.Digest()))

	dec, err := mh.Decode(d.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint64(multicodec.Sha2_224), dec.Code)
	assert.Equal(t, 28, dec.Length)
	assert.Equal(t, d.Digest(), dec.Digest)
}

func TestLookup(t *testing.T) {
	h, err := Lookup(multicodec.Blake2b256)
	require.NoError(t, err)
	assert.Equal(t, Blake2b256.Code(), h.Code())
	assert.Equal(t, Blake2b256.Size(), h.Size())

	_, err = Lookup(multicodec.Md5)
	assert.ErrorIs(t, err, ErrUnknownCode)

	_, err = Sum([]byte("x"), multicodec.Md5)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestSumAndVerify(t *testing.T) {
	data := []byte("verify me")
	m, err := Sum(data, multicodec.Sha3_256)
	require.NoError(t, err)
	require.NoError(t, Verify(m, data))

	assert.Error(t, Verify(m, []byte("tampered")))
	assert.Error(t, Verify(mh.Multihash{0x01}, data))

	md5, err := mh.Encode(make([]byte, 16), mh.MD5)
	require.NoError(t, err)
	assert.ErrorIs(t, Verify(md5, data), ErrUnknownCode)

	short, err := mh.Sum(data, mh.SHA2_256, 16)
	require.NoError(t, err)
	assert.Error(t, Verify(short, data))
}

func TestSumCID(t *testing.T) {
	data := []byte("content")
	c, err := SumCID(SHA2_256, multicodec.Raw, data)
	require.NoError(t, err)

	want, err := cid.Prefix{
		Version:  1,
		Codec:    cid.Raw,
		MhType:   mh.SHA2_256,
		MhLength: -1,
	}.Sum(data)
	require.NoError(t, err)
	assert.True(t, want.Equals(c), "got %s want %s", c, want)

	p := c.Prefix()
	assert.Equal(t, uint64(1), p.Version)
	assert.Equal(t, uint64(multicodec.Raw), p.Codec)
	require.NoError(t, Verify(c.Hash(), data))
}
