// Package keccak implements the Keccak-f[1600] permutation shared by the
// SHA-3 and SHAKE block cores.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// Lanes is the number of 64-bit lanes in the Keccak state.
const Lanes = 25

// State is the 1600-bit Keccak state.
type State [Lanes]uint64

// roundConstants are the iota step constants for the 24 rounds.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotations and piLanes drive the combined rho and pi steps.
var (
	rotations = [24]int{1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44}
	piLanes   = [24]int{10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1}
)

// Permute applies the 24-round Keccak-f[1600] permutation in place.
func (a *State) Permute() {
	var bc [5]uint64
	for round := 0; round < 24; round++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < Lanes; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho and pi
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piLanes[i]
			next := a[j]
			a[j] = bits.RotateLeft64(t, rotations[i])
			t = next
		}

		// chi
		for j := 0; j < Lanes; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}

// XORIn absorbs p, a whole number of lanes, into the front of the state.
func (a *State) XORIn(p []byte) {
	for i := 0; i+8 <= len(p); i += 8 {
		a[i/8] ^= binary.LittleEndian.Uint64(p[i:])
	}
}

// CopyOut writes the first len(p) bytes of the state into p.
func (a *State) CopyOut(p []byte) {
	var lane [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(lane[:], a[i/8])
		copy(p[i:], lane[:])
	}
}
