// Package aes provides fixed-parameter facades over the generalized
// Rijndael engine: the three standard AES key sizes, the non-standardized
// 192/256-bit-block Rijndael variants, and the experimental Giga variant at
// its three block sizes. Grounded on the teacher's per-algorithm facade
// packages (cipher/des, cipher/deal), each of which wraps a shared
// round-function/key-schedule pair behind a small constructor fixed to one
// parametrization.
package aes

import (
	"context"

	"github.com/kestrux/rijndael/blockcodec"
	"github.com/kestrux/rijndael/cipher/rijndael"
	"github.com/kestrux/rijndael/errors"
)

// Cipher is one fixed Rijndael/Giga parametrization, ready to
// encrypt/decrypt arbitrary-length byte buffers.
type Cipher struct {
	engine *rijndael.Engine
}

func newCipher(nb, nk int, experimental bool) (*Cipher, error) {
	engine, err := rijndael.New(rijndael.Config{
		Nb:           nb,
		Nk:           nk,
		Experimental: experimental,
	})
	if err != nil {
		return nil, err
	}
	return &Cipher{engine: engine}, nil
}

// NewAES128 returns the standard AES-128 facade: Nb=4, Nk=4.
func NewAES128() (*Cipher, error) { return newCipher(4, 4, false) }

// NewAES192 returns the standard AES-192 facade: Nb=4, Nk=6.
func NewAES192() (*Cipher, error) { return newCipher(4, 6, false) }

// NewAES256 returns the standard AES-256 facade: Nb=4, Nk=8.
func NewAES256() (*Cipher, error) { return newCipher(4, 8, false) }

// NewRijndael192 returns the non-standardized 192-bit-block variant: Nb=6,
// Nk=4.
func NewRijndael192() (*Cipher, error) { return newCipher(6, 4, false) }

// NewRijndael256 returns the non-standardized 256-bit-block variant: Nb=8,
// Nk=4.
func NewRijndael256() (*Cipher, error) { return newCipher(8, 4, false) }

// NewGiga512 returns the experimental GF(2^32) variant at a 512-bit block
// (Nb=4).
func NewGiga512() (*Cipher, error) { return newCipher(4, 4, true) }

// NewGiga768 returns the experimental GF(2^32) variant at a 768-bit block
// (Nb=6).
func NewGiga768() (*Cipher, error) { return newCipher(6, 6, true) }

// NewGiga1024 returns the experimental GF(2^32) variant at a 1024-bit block
// (Nb=8).
func NewGiga1024() (*Cipher, error) { return newCipher(8, 8, true) }

// BlockSizeBytes returns the byte length of one block under this facade.
func (c *Cipher) BlockSizeBytes() int {
	return c.engine.BlockSize() * 4 * (c.engine.Shape().ElementBits / 8)
}

// KeySizeBytes returns the byte length of the key this facade expects.
func (c *Cipher) KeySizeBytes() int {
	return c.engine.KeySize() * 4 * (c.engine.Shape().ElementBits / 8)
}

// Encrypt zero-pads data to a whole number of blocks, encrypts each block
// independently (ECB semantics — no chaining mode is applied here), and
// returns the concatenated ciphertext. key is zero-padded or truncated to
// this facade's key size.
func (c *Cipher) Encrypt(ctx context.Context, data, key []byte) ([]byte, error) {
	shape := c.engine.Shape()

	keyWords, err := blockcodec.BytesToKey(key, shape, c.engine.KeySize())
	if err != nil {
		return nil, errors.Annotate(err, "failed to decode key: %w")
	}

	schedule, err := c.engine.ExpandKey(ctx, keyWords)
	if err != nil {
		return nil, errors.Annotate(err, "failed to expand key: %w")
	}

	blocks, err := blockcodec.BytesToBlocks(data, shape, c.engine.BlockSize())
	if err != nil {
		return nil, errors.Annotate(err, "failed to decode plaintext: %w")
	}

	encrypted, err := c.engine.EncryptBlocks(ctx, blocks, schedule)
	if err != nil {
		return nil, errors.Annotate(err, "failed to encrypt: %w")
	}

	var out []byte
	for _, b := range encrypted {
		for _, w := range b {
			out = append(out, w.Bytes()...)
		}
	}

	return out, nil
}

// Decrypt is the inverse of Encrypt. data must be a whole number of blocks.
// The trailing-NUL strip documented on blockcodec.BlocksToBytes applies: if
// the original plaintext ended in 0x00, decrypt(encrypt(x,k),k) will come
// back short those bytes.
func (c *Cipher) Decrypt(ctx context.Context, data, key []byte) ([]byte, error) {
	shape := c.engine.Shape()

	keyWords, err := blockcodec.BytesToKey(key, shape, c.engine.KeySize())
	if err != nil {
		return nil, errors.Annotate(err, "failed to decode key: %w")
	}

	schedule, err := c.engine.ExpandKey(ctx, keyWords)
	if err != nil {
		return nil, errors.Annotate(err, "failed to expand key: %w")
	}

	blocks, err := blockcodec.BytesToBlocks(data, shape, c.engine.BlockSize())
	if err != nil {
		return nil, errors.Annotate(err, "failed to decode ciphertext: %w")
	}

	decrypted, err := c.engine.DecryptBlocks(ctx, blocks, schedule)
	if err != nil {
		return nil, errors.Annotate(err, "failed to decrypt: %w")
	}

	return blockcodec.BlocksToBytes(decrypted, shape), nil
}
