// Package tables holds the named constant tables the Rijndael engine and
// its S-box generator are built from: field defaults, affine-transform
// constants, MixColumn coefficient vectors, and ShiftRows offsets. No logic
// lives here, only data, the same role cipher/des and cipher/rijndael give
// a tables package in the rest of this module.
package tables

// DefaultIrreducible gives the fixed reducing polynomial for each supported
// field degree, encoded as an integer over GF(2) (bit i is the coefficient
// of x^i). The degree 8 and 32 entries omit the leading x^n bit; the smaller
// degrees carry it. math.NewField treats x^n as implicit, so both forms name
// the same polynomial.
var DefaultIrreducible = map[int]uint64{
	3:  0b1011,
	4:  0b10011,
	5:  0b100101,
	7:  0b10011101,
	8:  0b100011011 &^ (1 << 8), // 0x1B: x^8 + x^4 + x^3 + x + 1
	32: 0x10000008D &^ (1 << 32),
}

// AffineConstants bundles the forward/inverse affine-transform row and
// constant used to build an S-box for one element width.
type AffineConstants struct {
	Row      uint64
	Const    uint64
	InvRow   uint64
	InvConst uint64
	Size     int // bit width the affine transform operates over
}

// Standard is the AES affine transform over GF(2^8).
var Standard = AffineConstants{
	Row:      0b10001111,
	Const:    0x63,
	InvRow:   0b00100101,
	InvConst: 0x05,
	Size:     8,
}

// Giga is the affine transform over GF(2^32) for the experimental variant.
var Giga = AffineConstants{
	Row:      0xD1016880,
	Const:    0xB4E969D2,
	InvRow:   0xFC76DEE1,
	InvConst: 0xA38D0057,
	Size:     32,
}

// MixColumnCoeffs is the forward MixColumns polynomial [0x02,0x03,0x01,0x01]
// (element 0 first). Shared by the standard and Giga variants: the
// coefficients are field elements, not byte-width-specific.
var MixColumnCoeffs = [4]uint64{0x02, 0x03, 0x01, 0x01}

// InvMixColumnCoeffs is the inverse MixColumns polynomial
// [0x0E,0x0B,0x0D,0x09].
var InvMixColumnCoeffs = [4]uint64{0x0E, 0x0B, 0x0D, 0x09}

// ShiftRowOffsets returns the per-row cyclic-shift amount ShiftRows uses for
// a block of nb words: (0,1,2,3) for nb<8, (0,1,3,4) for nb==8.
func ShiftRowOffsets(nb int) [4]int {
	if nb == 8 {
		return [4]int{0, 1, 3, 4}
	}
	return [4]int{0, 1, 2, 3}
}
