package keystore

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/web3keystore/keystore/internal/wallet/ecaddress"
	"github.com/web3keystore/keystore/internal/wallet/hdwallet"
)

// Encrypt validates account against password and opts, runs scrypt,
// AES-128-CTR-encrypts the private key, MACs the result, optionally
// encrypts the mnemonic, and marshals the canonical V3 JSON document.
//
// opts.Entropy is reserved and rejected when non-nil rather than silently
// ignored, so callers notice if they relied on it. Encrypt never coerces
// progress into the options position or vice versa — the two are distinct
// parameters and the type system enforces that by construction.
func Encrypt(ctx context.Context, account Account, password Password, opts EncryptOptions, progress ProgressFunc) ([]byte, error) {
	defer zero(password)

	if opts.Entropy != nil {
		return nil, ErrReservedEntropy
	}

	address, err := ecaddress.Of(account.PrivateKey)
	if err != nil {
		return nil, err
	}
	if address != account.Address {
		return nil, ErrAddressPrivateKeyMismatch
	}

	path := account.Path
	if account.Mnemonic != "" {
		if path == "" {
			path = hdwallet.DefaultPath
		}
		derived, err := hdwallet.DerivePrivateKey(account.Mnemonic, path)
		if err != nil {
			return nil, errors.Wrap(err, "keystore: failed to derive from supplied mnemonic")
		}
		mismatch := !bytes.Equal(derived, account.PrivateKey)
		zero(derived)
		if mismatch {
			return nil, ErrMnemonicMismatch
		}
	} else if account.Path != "" {
		return nil, ErrPathWithoutMnemonic
	}

	salt, err := optionalRandom(opts.Salt, saltLen)
	if err != nil {
		return nil, err
	}
	iv, err := optionalRandom(opts.IV, ivLen)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidIV, err.Error())
	}
	uuidSeed, err := optionalRandom(opts.UUIDSeed, uuidSeedLen)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidUUID, err.Error())
	}

	scryptProfile := StandardScryptProfile()
	if opts.Scrypt != nil {
		scryptProfile = *opts.Scrypt
	}

	derivedKey, err := runKDF(ctx, progress, func() ([]byte, error) {
		return deriveKeyScrypt(password, salt, scryptProfile)
	})
	if err != nil {
		return nil, err
	}
	defer zero(derivedKey)

	ciphertext, err := aesCTRXOR(derivedKey[:aesKeyLen], iv, account.PrivateKey)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewRandomFromReader(bytes.NewReader(uuidSeed))
	if err != nil {
		return nil, errors.Wrap(err, "keystore: failed to build uuid")
	}

	doc := encryptedKeyJSONV3{
		Address: hexNoPrefix(account.Address.Bytes()),
		ID:      id.String(),
		Version: version3,
		Crypto: cryptoJSON{
			Cipher:     "aes-128-ctr",
			CipherText: hex.EncodeToString(ciphertext),
			CipherParams: cipherparamsJSON{
				IV: hex.EncodeToString(iv),
			},
			KDF: "scrypt",
			KDFParams: map[string]interface{}{
				"n":     scryptProfile.N,
				"r":     scryptProfile.R,
				"p":     scryptProfile.P,
				"dklen": scryptDKLen,
				"salt":  hex.EncodeToString(salt),
			},
			MAC: macHex(derivedKey, ciphertext),
		},
	}

	if account.Mnemonic != "" {
		mnemonicIV := make([]byte, ivLen)
		if _, err := io.ReadFull(rand.Reader, mnemonicIV); err != nil {
			return nil, errors.Wrap(err, "keystore: failed to generate mnemonic iv")
		}
		x, err := encryptMnemonicSection(account.Mnemonic, path, account.PrivateKey, derivedKey, mnemonicIV)
		if err != nil {
			return nil, err
		}
		client := opts.Client
		if client == "" {
			client = defaultClient
		}
		x.Client = client
		x.GethFilename = gethFilename(account.Address.Bytes())
		doc.XEthers = x
	}

	return json.Marshal(doc)
}

func deriveKeyScrypt(password, salt []byte, profile ScryptProfile) ([]byte, error) {
	if profile.N == 0 || profile.R == 0 || profile.P == 0 {
		return nil, ErrUnsupportedKDFParams
	}
	if !isPowerOfTwo(profile.N) {
		return nil, ErrUnsupportedKDFNValue
	}
	return scryptKey(password, salt, profile.N, profile.R, profile.P)
}

func optionalRandom(override []byte, size int) ([]byte, error) {
	if override != nil {
		if len(override) != size {
			return nil, fmt.Errorf("expected %d bytes, got %d", size, len(override))
		}
		return override, nil
	}
	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

func hexNoPrefix(b []byte) string { return hex.EncodeToString(b) }

// gethFilename follows accounts/keystore's "UTC--<timestamp>--<addr>"
// naming convention, with ISO8601 UTC time and ':' replaced by '-'.
func gethFilename(addr []byte) string {
	ts := time.Now().UTC()
	return fmt.Sprintf("UTC--%s--%s", toISO8601(ts), hex.EncodeToString(addr))
}

func toISO8601(t time.Time) string {
	date := zpad(int64(t.Year()), 4) + "-" + zpad(int64(t.Month()), 2) + "-" + zpad(int64(t.Day()), 2)
	clock := zpad(int64(t.Hour()), 2) + "-" + zpad(int64(t.Minute()), 2) + "-" + zpad(int64(t.Second()), 2)
	return date + "T" + clock + ".0Z"
}
