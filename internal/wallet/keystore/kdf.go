package keystore

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"
	"time"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// derivedKeyLen is always requested from the KDF regardless of the stored
// dklen: the Web3 half (AES key + MAC prefix) is 32 bytes, but this codec's
// x-ethers extension uses a further 32-byte slice for mnemonic encryption.
// dklen in the document only ever constrains the Web3-visible half.
const derivedKeyLen = 64

// deriveKey dispatches on crypto.kdf and always returns 64 raw bytes:
// [0:16) AES key, [16:32) MAC prefix, [32:64) mnemonic AES key.
func deriveKey(ctx context.Context, cryptoNode interface{}, password []byte, progress ProgressFunc) ([]byte, error) {
	kdfName, ok, err := lookupString(cryptoNode, "kdf")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnsupportedKDF
	}

	switch strings.ToLower(kdfName) {
	case "scrypt":
		n, nOK, err := paramInt(cryptoNode, "kdfparams/n")
		if err != nil {
			return nil, err
		}
		r, rOK, err := paramInt(cryptoNode, "kdfparams/r")
		if err != nil {
			return nil, err
		}
		p, pOK, err := paramInt(cryptoNode, "kdfparams/p")
		if err != nil {
			return nil, err
		}
		if !nOK || !rOK || !pOK || n == 0 || r == 0 || p == 0 {
			return nil, ErrUnsupportedKDFParams
		}
		if !isPowerOfTwo(n) {
			return nil, ErrUnsupportedKDFNValue
		}
		salt, dklen, err := saltAndDKLen(cryptoNode)
		if err != nil {
			return nil, err
		}
		if dklen != scryptDKLen {
			return nil, ErrUnsupportedDKLen
		}
		start := time.Now()
		defer func() { observeKDF("scrypt", start) }()
		return runKDF(ctx, progress, func() ([]byte, error) {
			return scrypt.Key(password, salt, n, r, p, derivedKeyLen)
		})

	case "pbkdf2":
		// prf is validated before c/dklen are even read.
		prf, ok, err := lookupString(cryptoNode, "kdfparams/prf")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUnsupportedPRF
		}
		hasher, ok := pbkdf2Hasher(prf)
		if !ok {
			return nil, ErrUnsupportedPRF
		}

		salt, dklen, err := saltAndDKLen(cryptoNode)
		if err != nil {
			return nil, err
		}
		if dklen != scryptDKLen {
			return nil, ErrUnsupportedDKLen
		}
		c, ok, err := paramInt(cryptoNode, "kdfparams/c")
		if err != nil {
			return nil, err
		}
		if !ok || c == 0 {
			return nil, ErrUnsupportedKDFParams
		}
		start := time.Now()
		defer func() { observeKDF("pbkdf2", start) }()
		return runKDF(ctx, progress, func() ([]byte, error) {
			return pbkdf2.Key(password, salt, c, derivedKeyLen, hasher), nil
		})

	default:
		return nil, ErrUnsupportedKDF
	}
}

// saltAndDKLen reads the two kdfparams fields common to both scrypt and
// pbkdf2.
func saltAndDKLen(cryptoNode interface{}) (salt []byte, dklen int, err error) {
	salt, ok, err := lookupHex(cryptoNode, "kdfparams/salt")
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrUnsupportedKDFParams
	}
	dklen, ok, err = paramInt(cryptoNode, "kdfparams/dklen")
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrUnsupportedDKLen
	}
	return salt, dklen, nil
}

// scryptKey is the encrypt-side counterpart of the scrypt branch in
// deriveKey: Encrypt already knows n/r/p (it just picked them) so it calls
// straight into scrypt.Key instead of round-tripping through a JSON node.
func scryptKey(password, salt []byte, n, r, p int) ([]byte, error) {
	start := time.Now()
	defer func() { observeKDF("scrypt", start) }()
	return scrypt.Key(password, salt, n, r, p, derivedKeyLen)
}

// observeKDF records how long a single KDF invocation took. kdfDuration is
// registered by registerMetrics (via NewService); observing an unregistered
// collector is harmless, it just won't be exported.
func observeKDF(kdf string, start time.Time) {
	kdfDuration.WithLabelValues(kdf).Observe(time.Since(start).Seconds())
}

// runKDF executes work on its own goroutine so a cancelled ctx does not
// block the caller on a multi-second scrypt call. Progress is reported
// 0.0 before dispatch and 1.0 on success: scrypt and pbkdf2 as wrapped
// here offer no incremental callback, so finer-grained progress would be
// guesswork.
func runKDF(ctx context.Context, progress ProgressFunc, work func() ([]byte, error)) ([]byte, error) {
	if progress != nil {
		progress(0)
	}

	type result struct {
		key []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		key, err := work()
		done <- result{key, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		if progress != nil {
			progress(1)
		}
		return res.key, nil
	}
}

// pbkdf2Hasher maps the keystore's "prf" field to a hash constructor. Only
// the two PRFs below are recognized; anything else is ErrUnsupportedPRF.
func pbkdf2Hasher(prf string) (func() hash.Hash, bool) {
	switch strings.ToLower(prf) {
	case "hmac-sha256":
		return sha256.New, true
	case "hmac-sha512":
		return sha512.New, true
	default:
		return nil, false
	}
}
