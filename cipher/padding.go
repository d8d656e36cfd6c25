// Package cipher carries the one padding convenience the core's byte facade
// needs: Zeros, a zero-fill scheme. It is explicitly not cryptographically
// sound (see blockcodec's doc comment) and exists only so the block codec
// has somewhere to delegate the trailing-NUL strip it performs on decode.
package cipher

// PaddingScheme selects a padding convention for Unpad.
type PaddingScheme int

// Zeros is the only scheme the core ships: blockcodec pads with zero bytes
// directly at the element/block granularity it already works in, and Unpad
// strips trailing zero bytes on the way back out. Chaining-mode padding
// schemes (PKCS7, ANSI X9.23, ISO 10126) are out of scope for this module.
const Zeros PaddingScheme = iota

// Unpad strips trailing zero bytes from data. This is lossy for any
// plaintext that itself ends in 0x00; see blockcodec's doc comment for the
// tradeoff.
func Unpad(data []byte, scheme PaddingScheme) ([]byte, error) {
	i := len(data) - 1
	for i >= 0 && data[i] == 0 {
		i--
	}
	return data[:i+1], nil
}
