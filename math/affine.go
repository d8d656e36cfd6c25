package math

import "github.com/kestrux/rijndael/bits"

// Affine computes the GF(2)-affine transform spec'd for S-box generation:
// bit i of the result is parity(rightRotateBits(row, size, i) AND
// reverseBits(x, size)) XOR bit i of constant. row is interpreted as a
// circulant matrix seed and const as an additive vector.
func Affine(x, row, constant uint64, size int) uint64 {
	xRev := bits.ReverseBits(x, size)

	var result uint64
	for i := 0; i < size; i++ {
		rowRot := bits.RightRotateBits(row, size, i)
		bit := bits.XorBits(rowRot & xRev)
		bit ^= byte(bits.IsBitSetUint(constant, i))
		result |= uint64(bit) << i
	}

	return result
}
