package bits_test

import (
	"testing"

	"github.com/kestrux/rijndael/bits"
	"github.com/stretchr/testify/assert"
)

func TestLeftRightRotateRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		v         uint64
		size      int
		blockSize int
		shift     int
	}{
		{"byte_shift1", 0x63, 8, 1, 1},
		{"byte_shift3", 0xA5, 8, 1, 3},
		{"word_elements", 0x00010203, 32, 8, 1},
		{"u64_word_16bit_elements", 0x0001020304050607, 64, 16, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := bits.LeftRotate(tt.v, tt.size, tt.blockSize, tt.shift)
			back := bits.RightRotate(left, tt.size, tt.blockSize, tt.shift)
			assert.Equal(t, tt.v, back, "(v << k) >> k must equal v")
		})
	}
}

func TestRotateWordElements(t *testing.T) {
	// RotWord([a0,a1,a2,a3]) == [a1,a2,a3,a0], expressed as a left rotate
	// by one 8-bit element within a 32-bit word.
	word := uint64(0x00010203)
	got := bits.LeftRotate(word, 32, 8, 1)
	assert.Equal(t, uint64(0x01020300), got)
}

func TestReverseBitsInvolution(t *testing.T) {
	for size := 1; size <= 32; size++ {
		max := uint64(1) << uint(size)
		// sample a handful of values rather than the full range for larger
		// sizes.
		samples := []uint64{0, 1, max - 1, max / 2}
		for _, v := range samples {
			v &= max - 1
			got := bits.ReverseBits(bits.ReverseBits(v, size), size)
			assert.Equalf(t, v, got, "size=%d v=%d", size, v)
		}
	}
}

func TestReverseBitsKnownValues(t *testing.T) {
	assert.Equal(t, uint64(0b1101_0000), bits.ReverseBits(0b0000_1011, 8))
	assert.Equal(t, uint64(0), bits.ReverseBits(0, 8))
}

func TestIsBitSet(t *testing.T) {
	v := uint64(0b1010)
	assert.False(t, bits.IsBitSet(v, 0))
	assert.True(t, bits.IsBitSet(v, 1))
	assert.False(t, bits.IsBitSet(v, 2))
	assert.True(t, bits.IsBitSet(v, 3))
}

func TestXorBitsParity(t *testing.T) {
	assert.Equal(t, byte(0), bits.XorBits(0b0000))
	assert.Equal(t, byte(1), bits.XorBits(0b0001))
	assert.Equal(t, byte(0), bits.XorBits(0b0011))
	assert.Equal(t, byte(1), bits.XorBits(0b0111))
}

func TestRightRotateBitsSpecialization(t *testing.T) {
	v := uint64(0b1000_0001)
	assert.Equal(t, bits.RightRotate(v, 8, 1, 1), bits.RightRotateBits(v, 8, 1))
	assert.Equal(t, bits.LeftRotate(v, 8, 1, 1), bits.LeftRotateBits(v, 8, 1))
}
