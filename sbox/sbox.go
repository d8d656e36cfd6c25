// Package sbox builds the forward and inverse substitution boxes the
// Rijndael engine's SubBytes/InvSubBytes steps use: affine(inverse(x)) and
// its inverse, over GF(2^8) for the standard variant and GF(2^32) for the
// experimental Giga variant.
package sbox

import (
	"github.com/hashicorp/golang-lru/v2"

	cryptoMath "github.com/kestrux/rijndael/math"
	"github.com/kestrux/rijndael/tables"
)

// SBox computes the forward and inverse substitution for one field element.
type SBox interface {
	Forward(x uint64) uint64
	Inverse(y uint64) uint64
}

// Standard precomputes both 256-entry tables over GF(2^8) at construction,
// mirroring cipher/rijndael's original initSBox: a build-once pass over
// every byte rather than a runtime cache.
type Standard struct {
	forward [256]byte
	inverse [256]byte
}

// NewStandard builds the 256-entry AES-compatible S-box pair.
func NewStandard() *Standard {
	s := &Standard{}

	for x := 0; x < 256; x++ {
		inv := byte(0)
		if x != 0 {
			v, _ := cryptoMath.GF256Inv(byte(x), 0x1B)
			inv = v
		}
		s.forward[x] = byte(cryptoMath.Affine(uint64(inv), tables.Standard.Row, tables.Standard.Const, tables.Standard.Size))
	}

	for x := 0; x < 256; x++ {
		s.inverse[s.forward[x]] = byte(x)
	}

	return s
}

// Forward returns S[x].
func (s *Standard) Forward(x uint64) uint64 {
	return uint64(s.forward[byte(x)])
}

// Inverse returns S^-1[y].
func (s *Standard) Inverse(y uint64) uint64 {
	return uint64(s.inverse[byte(y)])
}

// Giga computes the substitution over GF(2^32) on demand: a full table has
// 2^32 entries, so forward and inverse values are memoized behind a bounded
// LRU cache instead of precomputed, per the engine's memory-heavy variant
// design note.
type Giga struct {
	field   *cryptoMath.Field
	forward *lru.Cache[uint64, uint64]
	inverse *lru.Cache[uint64, uint64]
}

// DefaultGigaCacheSize bounds the Giga S-box caches when the caller does not
// override it; chosen generously enough to cover a handful of full-block
// SubBytes passes without thrashing.
const DefaultGigaCacheSize = 4096

// NewGiga builds a Giga (GF(2^32)) S-box with an LRU cache of the given
// size for each direction. cacheSize <= 0 uses DefaultGigaCacheSize.
func NewGiga(field *cryptoMath.Field, cacheSize int) (*Giga, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultGigaCacheSize
	}

	fwd, err := lru.New[uint64, uint64](cacheSize)
	if err != nil {
		return nil, err
	}
	inv, err := lru.New[uint64, uint64](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Giga{field: field, forward: fwd, inverse: inv}, nil
}

// Forward returns S[x], computing and caching it on a miss.
func (g *Giga) Forward(x uint64) uint64 {
	if v, ok := g.forward.Get(x); ok {
		return v
	}

	var inv uint64
	if x != 0 {
		v, _ := g.field.Inverse(x)
		inv = v
	}
	v := cryptoMath.Affine(inv, tables.Giga.Row, tables.Giga.Const, tables.Giga.Size)

	g.forward.Add(x, v)
	return v
}

// Inverse returns S^-1[y], computing and caching it on a miss.
func (g *Giga) Inverse(y uint64) uint64 {
	if v, ok := g.inverse.Get(y); ok {
		return v
	}

	affined := cryptoMath.Affine(y, tables.Giga.InvRow, tables.Giga.InvConst, tables.Giga.Size)

	var v uint64
	if affined != 0 {
		v, _ = g.field.Inverse(affined)
	}

	g.inverse.Add(y, v)
	return v
}
