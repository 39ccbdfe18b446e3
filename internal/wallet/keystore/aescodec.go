package keystore

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
)

// aesCTRXOR runs AES-CTR with iv as the full 16-byte initial counter
// block, incremented big-endian by crypto/cipher. The operation is its
// own inverse and length-preserving — no padding.
func aesCTRXOR(key, iv, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: failed to create AES cipher")
	}
	if len(iv) != ivLen {
		return nil, ErrInvalidIV
	}
	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)
	return out, nil
}
