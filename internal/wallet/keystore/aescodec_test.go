package keystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAESCTRXOR_RoundTrip(t *testing.T) {
	key := make([]byte, aesKeyLen)
	iv := make([]byte, ivLen)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range iv {
		iv[i] = byte(i * 3)
	}
	plaintext := []byte("a 32 byte secp256k1 private key")

	ciphertext, err := aesCTRXOR(key, iv, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)
	assert.Len(t, ciphertext, len(plaintext))

	back, err := aesCTRXOR(key, iv, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, back)
}

func TestAESCTRXOR_RejectsWrongIVLength(t *testing.T) {
	key := make([]byte, aesKeyLen)
	_, err := aesCTRXOR(key, make([]byte, 8), []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidIV)
}

func TestAESCTRXOR_RejectsWrongKeyLength(t *testing.T) {
	_, err := aesCTRXOR(make([]byte, 5), make([]byte, ivLen), []byte("x"))
	assert.Error(t, err)
}
