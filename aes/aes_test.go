package aes_test

import (
	"context"
	"testing"

	"github.com/kestrux/rijndael/aes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAES128SizesAndZeroKeyVector(t *testing.T) {
	c, err := aes.NewAES128()
	require.NoError(t, err)
	assert.Equal(t, 16, c.BlockSizeBytes())
	assert.Equal(t, 16, c.KeySizeBytes())

	ctx := context.Background()
	key := make([]byte, 16)
	plaintext := []byte{
		0x00, 0x00, 0x01, 0x01, 0x03, 0x03, 0x07, 0x07,
		0x0F, 0x0F, 0x1F, 0x1F, 0x3F, 0x3F, 0x7F, 0x7F,
	}
	want := []byte{
		0xC7, 0xD1, 0x24, 0x19, 0x48, 0x9E, 0x3B, 0x62,
		0x33, 0xA2, 0xC5, 0xA7, 0xF4, 0x56, 0x31, 0x72,
	}

	ciphertext, err := c.Encrypt(ctx, plaintext, key)
	require.NoError(t, err)
	assert.Equal(t, want, ciphertext)

	decrypted, err := c.Decrypt(ctx, ciphertext, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestFacadeRoundTripAcrossPresets(t *testing.T) {
	presets := map[string]func() (*aes.Cipher, error){
		"aes128":      aes.NewAES128,
		"aes192":      aes.NewAES192,
		"aes256":      aes.NewAES256,
		"rijndael192": aes.NewRijndael192,
		"rijndael256": aes.NewRijndael256,
	}

	ctx := context.Background()
	for name, ctor := range presets {
		t.Run(name, func(t *testing.T) {
			c, err := ctor()
			require.NoError(t, err)

			key := make([]byte, c.KeySizeBytes())
			for i := range key {
				key[i] = byte(i * 3)
			}

			plaintext := []byte("the quick brown fox jumps over a lazy dog, twice")

			ciphertext, err := c.Encrypt(ctx, plaintext, key)
			require.NoError(t, err)

			decrypted, err := c.Decrypt(ctx, ciphertext, key)
			require.NoError(t, err)

			blockSize := c.BlockSizeBytes()
			padded := len(plaintext) + (blockSize-len(plaintext)%blockSize)%blockSize
			expected := make([]byte, padded)
			copy(expected, plaintext)
			for i := len(expected) - 1; i >= 0 && expected[i] == 0; i-- {
				expected = expected[:i]
			}

			assert.Equal(t, expected, decrypted)
		})
	}
}

func TestGigaFacadeRoundTrip(t *testing.T) {
	c, err := aes.NewGiga512()
	require.NoError(t, err)
	assert.Equal(t, 64, c.BlockSizeBytes())
	assert.Equal(t, 64, c.KeySizeBytes())

	ctx := context.Background()
	key := make([]byte, c.KeySizeBytes())
	for i := range key {
		key[i] = byte(i + 1)
	}
	plaintext := []byte("giga variant round trip sample data, not a multiple of block size")

	ciphertext, err := c.Encrypt(ctx, plaintext, key)
	require.NoError(t, err)

	decrypted, err := c.Decrypt(ctx, ciphertext, key)
	require.NoError(t, err)

	trimmed := plaintext
	for i := len(trimmed) - 1; i >= 0 && trimmed[i] == 0; i-- {
		trimmed = trimmed[:i]
	}
	assert.Equal(t, trimmed, decrypted)
}
