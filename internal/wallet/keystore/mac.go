package keystore

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
)

// computeMAC is Keccak256(key[16:32] || ciphertext). The MAC authenticates
// ciphertext, not plaintext — the Web3 convention.
func computeMAC(derivedKey, ciphertext []byte) []byte {
	return crypto.Keccak256(derivedKey[aesKeyLen:macKeyLen+aesKeyLen], ciphertext)
}

// checkMAC recomputes the MAC and compares it, in constant time, against
// the hex string stored in the document. A mismatch is reported as
// ErrInvalidPassword, indistinguishable from a corrupt MAC.
func checkMAC(derivedKey, ciphertext []byte, wantHex string) error {
	want, err := decodeHex(wantHex)
	if err != nil {
		return err
	}
	got := computeMAC(derivedKey, ciphertext)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

func macHex(derivedKey, ciphertext []byte) string {
	return hex.EncodeToString(computeMAC(derivedKey, ciphertext))
}
