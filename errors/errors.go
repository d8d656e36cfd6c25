// Package errors represents some useful helpers for error-handling improvement.
package errors

import "fmt"

// ConstError is just a simple string error.
type ConstError string

// type check
var _ error = (*ConstError)(nil)

// Error implements [error] interface for ConstError.
func (e ConstError) Error() string {
	return string(e)
}

// Annotate wraps err with message unless err is nil.
func Annotate(err error, format string, args ...any) (annotated error) {
	if err == nil {
		return err
	}

	return fmt.Errorf(format, append(args, err)...)
}

// Sentinel errors shared by the field/word/engine layers.  Each one is a
// programming-error kind: the caller passed a parameter the layer cannot
// operate on, and the layer fails immediately rather than guessing.
const (
	// ErrInvalidParameter is returned when a constructor receives an Nb, Nk,
	// degree, or other structural parameter outside its supported set.
	ErrInvalidParameter = ConstError("invalid parameter")

	// ErrInvalidKeyLength is returned when a key does not contain exactly
	// the number of words a key schedule expects.
	ErrInvalidKeyLength = ConstError("invalid key length")

	// ErrInvalidIndex is returned when a Word is indexed outside [-4, 4).
	ErrInvalidIndex = ConstError("invalid index")

	// ErrZeroInverse is returned by field inversion of the zero element.
	ErrZeroInverse = ConstError("zero has no multiplicative inverse")

	// ErrFieldMismatch is returned when an operation mixes elements from
	// two fields of different degree or reducing polynomial.
	ErrFieldMismatch = ConstError("operation across mismatched fields")

	// ErrInvalidBlockSize is returned when a block does not match the
	// cipher's configured block size.
	ErrInvalidBlockSize = ConstError("invalid block size")

	// ErrInvalidKeySize is returned when a key does not match the cipher's
	// configured key size.
	ErrInvalidKeySize = ConstError("invalid key size")
)
