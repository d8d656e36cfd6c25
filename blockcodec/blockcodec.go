// Package blockcodec converts between raw byte buffers and the blocks of
// words the Rijndael engine operates on. It zero-fills a short final chunk
// on the way in and strips trailing NUL bytes on the way out — a lossy
// convenience kept only for compatibility with the existing test harness,
// not a real padding scheme.
//
// The byte order here differs from FIPS-197's AES state layout
// (s[r,c] = byte[r+4c]): bytes are grouped into elements big-endian, then
// elements are grouped into blocks column-major (element 0 of word 0 is the
// first element of the block). An implementer targeting interop with an
// external AES implementation needs a transpose at this boundary; this
// module's own block-level test vectors are derived from this ordering.
package blockcodec

import (
	"github.com/kestrux/rijndael/cipher"
	"github.com/kestrux/rijndael/errors"
	"github.com/kestrux/rijndael/word"
)

// BytesToBlocks groups data into blocks of nb words each, per shape's
// element width: bytes are chunked into big-endian elements
// (shape.ElementBits/8 bytes each, zero-filling a short final chunk), then
// elements are grouped into blocks of 4*nb elements (zero-filling a short
// final block).
func BytesToBlocks(data []byte, shape word.Shape, nb int) ([][]word.Word, error) {
	elems := bytesToElements(data, shape)

	perBlock := 4 * nb
	if rem := len(elems) % perBlock; rem != 0 {
		elems = append(elems, make([]uint64, perBlock-rem)...)
	}
	if len(elems) == 0 {
		elems = make([]uint64, perBlock)
	}

	blocks := make([][]word.Word, len(elems)/perBlock)
	for b := range blocks {
		base := b * perBlock
		words := make([]word.Word, nb)
		for c := 0; c < nb; c++ {
			w, err := word.FromElements(shape, elems[base+4*c:base+4*c+4])
			if err != nil {
				return nil, errors.Annotate(err, "block %d word %d: %w", b, c)
			}
			words[c] = w
		}
		blocks[b] = words
	}

	return blocks, nil
}

// BytesToKey groups data into exactly nk words: bytes are chunked into
// elements as BytesToBlocks does, then truncated or zero-padded to 4*nk
// elements before grouping.
func BytesToKey(data []byte, shape word.Shape, nk int) ([]word.Word, error) {
	elems := bytesToElements(data, shape)

	want := 4 * nk
	if len(elems) > want {
		elems = elems[:want]
	} else if len(elems) < want {
		elems = append(elems, make([]uint64, want-len(elems))...)
	}

	key := make([]word.Word, nk)
	for c := 0; c < nk; c++ {
		w, err := word.FromElements(shape, elems[4*c:4*c+4])
		if err != nil {
			return nil, errors.Annotate(err, "key word %d: %w", c)
		}
		key[c] = w
	}

	return key, nil
}

// BlocksToBytes concatenates every block's elements in order, writes each
// element big-endian, and strips trailing NUL bytes via the zero-fill
// padding scheme (cipher.Unpad with cipher.Zeros) — a lossy convenience:
// real trailing zero bytes in the plaintext are discarded along with the
// zero-fill, see the package doc.
func BlocksToBytes(blocks [][]word.Word, shape word.Shape) []byte {
	var out []byte
	for _, block := range blocks {
		for _, w := range block {
			out = append(out, w.Bytes()...)
		}
	}

	stripped, _ := cipher.Unpad(out, cipher.Zeros)
	return stripped
}

func bytesToElements(data []byte, shape word.Shape) []uint64 {
	elemBytes := shape.ElementBits / 8
	if rem := len(data) % elemBytes; rem != 0 {
		data = append(append([]byte{}, data...), make([]byte, elemBytes-rem)...)
	}

	elems := make([]uint64, len(data)/elemBytes)
	for i := range elems {
		var v uint64
		for b := 0; b < elemBytes; b++ {
			v = (v << 8) | uint64(data[i*elemBytes+b])
		}
		elems[i] = v
	}

	return elems
}
