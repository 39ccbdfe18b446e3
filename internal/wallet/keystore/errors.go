package keystore

import "github.com/pkg/errors"

// Flat error taxonomy. Callers branch on these with errors.Is; wrapping
// (github.com/pkg/errors.Wrap) never hides the sentinel.
var (
	ErrBadJSON                   = errors.New("keystore: input is not a valid JSON document")
	ErrAmbiguousKey              = errors.New("keystore: sibling JSON keys differ only in case")
	ErrUnsupportedKDF            = errors.New("keystore: unsupported kdf")
	ErrUnsupportedKDFParams      = errors.New("keystore: kdf parameters missing or zero")
	ErrUnsupportedKDFNValue      = errors.New("keystore: scrypt n is not a power of two")
	ErrUnsupportedDKLen          = errors.New("keystore: dklen must be 32")
	ErrUnsupportedPRF            = errors.New("keystore: unsupported pbkdf2 prf")
	ErrUnsupportedCipher         = errors.New("keystore: unsupported cipher")
	ErrInvalidPassword           = errors.New("keystore: could not decrypt key with given password")
	ErrAddressMismatch           = errors.New("keystore: document address does not match derived address")
	ErrMnemonicMismatch          = errors.New("keystore: mnemonic does not derive the expected private key")
	ErrAddressPrivateKeyMismatch = errors.New("keystore: account address does not match its private key")
	ErrPathWithoutMnemonic       = errors.New("keystore: path supplied without a mnemonic")
	ErrInvalidIV                 = errors.New("keystore: iv must be 16 bytes")
	ErrInvalidUUID               = errors.New("keystore: uuid seed must be 16 bytes")
	ErrInvalidHex                = errors.New("keystore: malformed hex")
	ErrReservedEntropy           = errors.New("keystore: EncryptOptions.Entropy is reserved and not yet consumed")
)
