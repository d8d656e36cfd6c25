// Package rijndael implements the generalized Rijndael round engine: key
// expansion, state transforms (SubBytes/ShiftRows/MixColumns/AddRoundKey)
// and their inverses, and round scheduling, parametrized over block size
// (Nb), key size (Nk) and the element field (standard GF(2^8), or the
// experimental Giga GF(2^32) variant).
package rijndael

import (
	"context"

	v "github.com/asaskevich/govalidator"

	"github.com/kestrux/rijndael/errors"
	cryptoMath "github.com/kestrux/rijndael/math"
	"github.com/kestrux/rijndael/sbox"
	"github.com/kestrux/rijndael/tables"
	"github.com/kestrux/rijndael/word"
)

// Config describes one Rijndael/Giga parametrization.
type Config struct {
	// Nb is the block size in words: 4, 6, or 8.
	Nb int `validate:"required"`
	// Nk is the key size in words: 4, 6, or 8.
	Nk int `validate:"required"`
	// Experimental selects the Giga (GF(2^32)) variant instead of the
	// standard (GF(2^8)) one.
	Experimental bool
	// GigaCacheSize bounds the Giga S-box's LRU caches. Ignored unless
	// Experimental is set; zero uses sbox.DefaultGigaCacheSize.
	GigaCacheSize int
}

var validSizes = map[int]bool{4: true, 6: true, 8: true}

// Engine is one constructed, immutable Rijndael/Giga parametrization: a
// field, an S-box pair, ShiftRows offsets, and the round count they imply.
// Safe for concurrent use once constructed (see package sbox for the Giga
// cache's internal synchronization).
type Engine struct {
	nb, nk, rounds int
	field          *cryptoMath.Field
	sbox           sbox.SBox
	shiftOffsets   [4]int
	shape          word.Shape
	rcon           []word.Word
}

// New validates cfg and builds an Engine. Nb/Nk outside {4,6,8} fail with
// errors.ErrInvalidParameter.
func New(cfg Config) (*Engine, error) {
	ok, err := v.ValidateStruct(cfg)
	if err != nil || !ok {
		return nil, errors.ErrInvalidParameter
	}
	if !validSizes[cfg.Nb] || !validSizes[cfg.Nk] {
		return nil, errors.ErrInvalidParameter
	}

	rounds := cfg.Nb
	if cfg.Nk > rounds {
		rounds = cfg.Nk
	}
	rounds += 6

	degree := 8
	shape := word.Standard
	if cfg.Experimental {
		degree = 32
		shape = word.GigaShape
	}

	field, err := cryptoMath.NewField(degree, tables.DefaultIrreducible[degree])
	if err != nil {
		return nil, err
	}

	var box sbox.SBox
	if cfg.Experimental {
		box, err = sbox.NewGiga(field, cfg.GigaCacheSize)
		if err != nil {
			return nil, err
		}
	} else {
		box = sbox.NewStandard()
	}

	e := &Engine{
		nb:           cfg.Nb,
		nk:           cfg.Nk,
		rounds:       rounds,
		field:        field,
		sbox:         box,
		shiftOffsets: tables.ShiftRowOffsets(cfg.Nb),
		shape:        shape,
	}

	e.rcon = e.buildRcon()

	return e, nil
}

// BlockSize returns Nb, the number of words per block.
func (e *Engine) BlockSize() int { return e.nb }

// KeySize returns Nk, the number of words per key.
func (e *Engine) KeySize() int { return e.nk }

// Rounds returns R = max(Nb, Nk) + 6.
func (e *Engine) Rounds() int { return e.rounds }

// Shape returns the element shape (standard or Giga) this engine operates
// over.
func (e *Engine) Shape() word.Shape { return e.shape }

// buildRcon precomputes the round constants needed for the largest key
// schedule this config can produce: ceil((Nb*(R+1)-1)/Nk) entries, element 0
// of entry i (1-indexed in the spec) holding x^(i-1) in the field.
func (e *Engine) buildRcon() []word.Word {
	total := e.nb * (e.rounds + 1)
	count := (total - 1 + e.nk - 1) / e.nk
	if count < 1 {
		count = 1
	}

	rcon := make([]word.Word, count)
	for i := 0; i < count; i++ {
		w, _ := word.FromElements(e.shape, []uint64{e.field.PowX(i)})
		rcon[i] = w
	}

	return rcon
}

// ExpandKey derives the key schedule: Nb*(R+1) words, the first Nk of which
// are the input key verbatim. key must contain exactly Nk words.
func (e *Engine) ExpandKey(ctx context.Context, key []word.Word) ([]word.Word, error) {
	if len(key) != e.nk {
		return nil, errors.ErrInvalidKeyLength
	}

	total := e.nb * (e.rounds + 1)
	w := make([]word.Word, total)
	copy(w, key)

	for i := e.nk; i < total; i++ {
		temp := w[i-1]

		switch {
		case i%e.nk == 0:
			temp = e.subWord(temp.RotateLeft(1))
			rc := e.rcon[i/e.nk-1]
			temp, _ = temp.XOR(rc)
		case e.nk > 6 && i%e.nk == 4:
			temp = e.subWord(temp)
		}

		next, err := w[i-e.nk].XOR(temp)
		if err != nil {
			return nil, errors.Annotate(err, "key expansion word %d: %w", i)
		}
		w[i] = next
	}

	return w, nil
}

func (e *Engine) subWord(w word.Word) word.Word {
	elems := w.Elements()
	out := make([]uint64, len(elems))
	for i, el := range elems {
		out[i] = e.sbox.Forward(el)
	}
	result, _ := word.FromElements(e.shape, out)
	return result
}

// roundKeyGroups splits a flat key schedule into R+1 groups of Nb words
// each, one group per round.
func (e *Engine) roundKeyGroups(schedule []word.Word) [][]word.Word {
	groups := make([][]word.Word, e.rounds+1)
	for i := range groups {
		groups[i] = schedule[i*e.nb : (i+1)*e.nb]
	}
	return groups
}

// EncryptBlock runs the forward round schedule on one block of Nb words.
func (e *Engine) EncryptBlock(ctx context.Context, block []word.Word, schedule []word.Word) ([]word.Word, error) {
	if len(block) != e.nb {
		return nil, errors.ErrInvalidBlockSize
	}

	groups := e.roundKeyGroups(schedule)

	state := make([]word.Word, e.nb)
	copy(state, block)

	var err error
	state, err = e.addRoundKey(state, groups[0])
	if err != nil {
		return nil, errors.Annotate(err, "initial round key: %w")
	}

	for round := 1; round < e.rounds; round++ {
		state = e.subBytes(state)
		state = e.shiftRows(state)
		state, err = e.mixColumns(state, tables.MixColumnCoeffs)
		if err != nil {
			return nil, errors.Annotate(err, "round %d mix columns: %w", round)
		}
		state, err = e.addRoundKey(state, groups[round])
		if err != nil {
			return nil, errors.Annotate(err, "round %d key: %w", round)
		}
	}

	state = e.subBytes(state)
	state = e.shiftRows(state)
	state, err = e.addRoundKey(state, groups[e.rounds])
	if err != nil {
		return nil, errors.Annotate(err, "final round key: %w")
	}

	return state, nil
}

// DecryptBlock runs the inverse round schedule on one block of Nb words.
func (e *Engine) DecryptBlock(ctx context.Context, block []word.Word, schedule []word.Word) ([]word.Word, error) {
	if len(block) != e.nb {
		return nil, errors.ErrInvalidBlockSize
	}

	groups := e.roundKeyGroups(schedule)
	reversed := make([][]word.Word, len(groups))
	for i, g := range groups {
		reversed[len(groups)-1-i] = g
	}

	state := make([]word.Word, e.nb)
	copy(state, block)

	var err error
	state, err = e.addRoundKey(state, reversed[0])
	if err != nil {
		return nil, errors.Annotate(err, "initial round key: %w")
	}

	for round := 1; round < e.rounds; round++ {
		state = e.invShiftRows(state)
		state = e.invSubBytes(state)
		state, err = e.addRoundKey(state, reversed[round])
		if err != nil {
			return nil, errors.Annotate(err, "round %d key: %w", round)
		}
		state, err = e.mixColumns(state, tables.InvMixColumnCoeffs)
		if err != nil {
			return nil, errors.Annotate(err, "round %d inverse mix columns: %w", round)
		}
	}

	state = e.invShiftRows(state)
	state = e.invSubBytes(state)
	state, err = e.addRoundKey(state, reversed[e.rounds])
	if err != nil {
		return nil, errors.Annotate(err, "final round key: %w")
	}

	return state, nil
}

// EncryptBlocks applies EncryptBlock independently to each Nb-word block in
// blocks (ECB semantics), preserving order.
func (e *Engine) EncryptBlocks(ctx context.Context, blocks [][]word.Word, schedule []word.Word) ([][]word.Word, error) {
	out := make([][]word.Word, len(blocks))
	for i, b := range blocks {
		enc, err := e.EncryptBlock(ctx, b, schedule)
		if err != nil {
			return nil, errors.Annotate(err, "block %d: %w", i)
		}
		out[i] = enc
	}
	return out, nil
}

// DecryptBlocks applies DecryptBlock independently to each Nb-word block in
// blocks, preserving order.
func (e *Engine) DecryptBlocks(ctx context.Context, blocks [][]word.Word, schedule []word.Word) ([][]word.Word, error) {
	out := make([][]word.Word, len(blocks))
	for i, b := range blocks {
		dec, err := e.DecryptBlock(ctx, b, schedule)
		if err != nil {
			return nil, errors.Annotate(err, "block %d: %w", i)
		}
		out[i] = dec
	}
	return out, nil
}

func (e *Engine) addRoundKey(state, roundKey []word.Word) ([]word.Word, error) {
	out := make([]word.Word, e.nb)
	for i := range state {
		xored, err := state[i].XOR(roundKey[i])
		if err != nil {
			return nil, err
		}
		out[i] = xored
	}
	return out, nil
}

func (e *Engine) subBytes(state []word.Word) []word.Word {
	out := make([]word.Word, e.nb)
	for i, w := range state {
		out[i] = e.subWord(w)
	}
	return out
}

func (e *Engine) invSubBytes(state []word.Word) []word.Word {
	out := make([]word.Word, e.nb)
	for i, w := range state {
		elems := w.Elements()
		mapped := make([]uint64, len(elems))
		for j, el := range elems {
			mapped[j] = e.sbox.Inverse(el)
		}
		out[i], _ = word.FromElements(e.shape, mapped)
	}
	return out
}

// shiftRows cyclically left-shifts row r of the state (viewed as a 4xNb
// matrix, column c holding word c) by e.shiftOffsets[r] column positions.
func (e *Engine) shiftRows(state []word.Word) []word.Word {
	return e.doShiftRows(state, true)
}

// invShiftRows is the mirror, shifting right instead of left.
func (e *Engine) invShiftRows(state []word.Word) []word.Word {
	return e.doShiftRows(state, false)
}

func (e *Engine) doShiftRows(state []word.Word, left bool) []word.Word {
	nb := e.nb

	rows := make([][]uint64, 4)
	for r := 0; r < 4; r++ {
		rows[r] = make([]uint64, nb)
		for c := 0; c < nb; c++ {
			rows[r][c], _ = state[c].At(r)
		}
	}

	shifted := make([][]uint64, 4)
	for r := 0; r < 4; r++ {
		offset := e.shiftOffsets[r]
		shifted[r] = make([]uint64, nb)
		for c := 0; c < nb; c++ {
			var src int
			if left {
				src = (c + offset) % nb
			} else {
				src = ((c-offset)%nb + nb) % nb
			}
			shifted[r][c] = rows[r][src]
		}
	}

	out := make([]word.Word, nb)
	for c := 0; c < nb; c++ {
		elems := make([]uint64, 4)
		for r := 0; r < 4; r++ {
			elems[r] = shifted[r][c]
		}
		out[c], _ = word.FromElements(e.shape, elems)
	}

	return out
}

// mixColumns replaces each state word (column) with a field-polynomial
// multiplication against coeffs: output element i is the XOR over j of
// multiply(coeffs rotated right by i at position j, column[j]).
func (e *Engine) mixColumns(state []word.Word, coeffs [4]uint64) ([]word.Word, error) {
	out := make([]word.Word, e.nb)

	for c, column := range state {
		elems := column.Elements()

		result := make([]uint64, 4)
		for i := 0; i < 4; i++ {
			var acc uint64
			for j := 0; j < 4; j++ {
				coeff := coeffs[(j-i+4)%4]
				acc ^= e.field.Multiply(coeff, elems[j])
			}
			result[i] = acc
		}

		w, err := word.FromElements(e.shape, result)
		if err != nil {
			return nil, err
		}
		out[c] = w
	}

	return out, nil
}
