package math

import (
	"math/bits"

	"github.com/kestrux/rijndael/errors"
)

// Field is GF(2^n) for a parametrized degree, with arithmetic reduced by a
// fixed irreducible polynomial of that degree.  It generalizes the
// hardcoded-degree-8 functions in gf256.go (GF256Add, GF256Mul, GF256Inv) to any
// degree the Rijndael engine needs: 8 for the standard byte-oriented
// variant, 32 for the experimental Giga variant.
type Field struct {
	degree      int
	irreducible uint64
	order       uint64
}

// NewField builds a GF(2^degree) described by irreducible, a degree-`degree`
// polynomial over GF(2) encoded as an integer (bit i is the coefficient of
// x^i; the leading x^degree term is implicit).
func NewField(degree int, irreducible uint64) (*Field, error) {
	if degree <= 0 || degree > 63 {
		return nil, errors.ErrInvalidParameter
	}

	f := &Field{
		degree:      degree,
		irreducible: irreducible,
		order:       uint64(1) << degree,
	}

	if !f.isIrreducible(irreducible) {
		return nil, ErrReduciblePolynomial
	}

	return f, nil
}

// Degree returns n for this GF(2^n).
func (f *Field) Degree() int { return f.degree }

// Order returns q = 2^n.
func (f *Field) Order() uint64 { return f.order }

// Same reports whether two elements belong to fields that are
// interchangeable for arithmetic purposes (identical degree and
// reduction polynomial).
func (f *Field) Same(other *Field) bool {
	return f.degree == other.degree && f.irreducible == other.irreducible
}

// Add is addition in GF(2^n), which is XOR. Subtract is identical to Add:
// every element is its own additive inverse.
func (f *Field) Add(a, b uint64) uint64 {
	return a ^ b
}

// Subtract is an alias for Add (GF(2^n) addition is its own inverse).
func (f *Field) Subtract(a, b uint64) uint64 {
	return f.Add(a, b)
}

// Multiply performs peasant multiplication in GF(2^n): repeatedly XOR a into
// the accumulator when b's low bit is set, then double a (XORing the
// irreducible polynomial back in on overflow) and shift b right. Terminates
// because b strictly shrinks every iteration.
func (f *Field) Multiply(a, b uint64) uint64 {
	a &= f.order - 1
	b &= f.order - 1

	top := f.order >> 1
	var result uint64

	for a != 0 && b != 0 {
		if b&1 != 0 {
			result ^= a
		}
		if a&top != 0 {
			a = ((a << 1) ^ f.irreducible) & (f.order - 1)
		} else {
			a = (a << 1) & (f.order - 1)
		}
		b >>= 1
	}

	return result
}

// DivMod performs polynomial long division: dividend = multiply(quotient,
// divisor) XOR remainder, with remainder's bit length below divisor's.
// divisor must be non-zero.
func (f *Field) DivMod(dividend, divisor uint64) (quotient, remainder uint64, err error) {
	if divisor == 0 {
		return 0, 0, errors.ErrInvalidParameter
	}

	remainder = dividend
	divisorDeg := degreeOf(divisor)

	for remainder != 0 {
		remDeg := degreeOf(remainder)
		if remDeg < divisorDeg {
			break
		}
		shift := remDeg - divisorDeg
		quotient ^= 1 << shift
		remainder ^= divisor << shift
	}

	return quotient, remainder, nil
}

// Egcd runs the extended Euclidean algorithm over GF(2)[x], returning g, x, y
// such that g = multiply(a,x) XOR multiply(b,y). Recursive in the textbook
// shape: base case a==0 returns (b, 0, 1); otherwise it recurses on
// DivMod(b, a).
func (f *Field) Egcd(a, b uint64) (g, x, y uint64) {
	if a == 0 {
		return b, 0, 1
	}

	q, r, _ := f.DivMod(b, a)
	g1, x1, y1 := f.Egcd(r, a)

	return g1, y1 ^ f.Multiply(q, x1), x1
}

// Inverse returns the multiplicative inverse of p in this field. Fails with
// ErrZeroInverse when p is zero.
func (f *Field) Inverse(p uint64) (uint64, error) {
	if p == 0 {
		return 0, errors.ErrZeroInverse
	}

	_, x, _ := f.Egcd(p, f.irreducible|f.order)

	return x & (f.order - 1), nil
}

// Divide returns multiply(a, inverse(b)).
func (f *Field) Divide(a, b uint64) (uint64, error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return 0, err
	}

	return f.Multiply(a, inv), nil
}

// PowX returns x^power in this field, computed by repeated doubling
// (multiplying by x, the element with value 2) with reduction. Used to build
// Rcon tables: Rcon[i]'s leading element is PowX(i-1).
func (f *Field) PowX(power int) uint64 {
	result := uint64(1)
	for i := 0; i < power; i++ {
		result = f.Multiply(result, 2)
	}
	return result
}

func (f *Field) isIrreducible(poly uint64) bool {
	full := poly | (uint64(1) << f.degree)

	for d := 1; d <= f.degree/2; d++ {
		for p := uint64(1) << d; p < uint64(1)<<(d+1); p++ {
			if degreeOf(p) != d {
				continue
			}
			_, rem, err := f.divModRaw(full, p)
			if err == nil && rem == 0 {
				return false
			}
		}
	}

	return true
}

// divModRaw is DivMod without requiring the receiver's own irreducible
// polynomial: used only by isIrreducible during construction, before f is
// fully trusted.
func (f *Field) divModRaw(dividend, divisor uint64) (quotient, remainder uint64, err error) {
	if divisor == 0 {
		return 0, 0, errors.ErrInvalidParameter
	}

	remainder = dividend
	divisorDeg := degreeOf(divisor)

	for remainder != 0 {
		remDeg := degreeOf(remainder)
		if remDeg < divisorDeg {
			break
		}
		shift := remDeg - divisorDeg
		quotient ^= 1 << shift
		remainder ^= divisor << shift
	}

	return quotient, remainder, nil
}

func degreeOf(p uint64) int {
	if p == 0 {
		return -1
	}
	return bits.Len64(p) - 1
}
