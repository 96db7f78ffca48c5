// Package reference provides independent implementations of the algorithms
// built in this module, for cross-checking in tests.
// This package wraps golang.org/x/crypto, minio/sha256-simd and crypto/*
// packages.
package reference

import (
	"crypto/sha256"
	"hash"

	simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Blake2bConfig specifies Blake2b hashing configuration.
type Blake2bConfig struct {
	OutputSize int    // Hash output size in bytes
	Key        []byte // Optional key for keyed hashing
}

// Blake2bHash computes a Blake2b hash with the specified configuration.
func Blake2bHash(data []byte, config Blake2bConfig) ([]byte, error) {
	hasher, err := blake2b.New(config.OutputSize, config.Key)
	if err != nil {
		return nil, err
	}
	hasher.Write(data)
	return hasher.Sum(nil), nil
}

// Blake2b256 computes a 256-bit Blake2b hash (32 bytes).
func Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// Blake2b512 computes a 512-bit Blake2b hash (64 bytes).
func Blake2b512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}

// SHA256 computes SHA-256 with the standard library.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SHA224 computes SHA-224 with the standard library.
func SHA224(data []byte) [28]byte {
	return sha256.Sum224(data)
}

// SHA256SIMD computes SHA-256 with minio/sha256-simd.
func SHA256SIMD(data []byte) [32]byte {
	return simd.Sum256(data)
}

// SHA3 computes a SHA-3 digest of the given size in bytes (28, 32, 48 or 64).
func SHA3(size int, data []byte) []byte {
	var h hash.Hash
	switch size {
	case 28:
		h = sha3.New224()
	case 32:
		h = sha3.New256()
	case 48:
		h = sha3.New384()
	case 64:
		h = sha3.New512()
	default:
		panic("reference: unsupported SHA-3 size")
	}
	h.Write(data)
	return h.Sum(nil)
}

// Keccak256 computes the legacy (pre-FIPS 202) Keccak-256 digest.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Shake128 fills out with SHAKE128 output for data.
func Shake128(out, data []byte) {
	sha3.ShakeSum128(out, data)
}

// Shake256 fills out with SHAKE256 output for data.
func Shake256(out, data []byte) {
	sha3.ShakeSum256(out, data)
}
