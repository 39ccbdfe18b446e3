// Package hdwallet walks BIP-32 derivation paths over BIP-39 mnemonics. It
// wraps github.com/tyler-smith/go-bip39 and github.com/tyler-smith/go-bip32
// rather than reimplementing HD derivation.
package hdwallet

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

// DefaultPath is the BIP-44 path used when a keystore document's x-ethers
// section omits one.
const DefaultPath = "m/44'/60'/0'/0/0"

const hardenedOffset = 0x80000000

// Path is a parsed BIP-32 derivation path, root-relative ("m/44'/60'/0'/0/0").
type Path []uint32

// ParsePath parses an absolute "m/..." derivation path into path indices.
// Path segments are treated as opaque integers delegated entirely to the
// underlying derivation; no semantic meaning is assigned to any segment
// beyond the trailing "'" hardened marker.
func ParsePath(path string) (Path, error) {
	components := strings.Split(strings.TrimSpace(path), "/")
	if len(components) == 0 || strings.TrimSpace(components[0]) != "m" {
		return nil, errors.Errorf("hdwallet: path %q must be absolute (start with \"m\")", path)
	}
	components = components[1:]
	if len(components) == 0 {
		return nil, errors.New("hdwallet: empty derivation path")
	}

	result := make(Path, 0, len(components))
	for _, c := range components {
		c = strings.TrimSpace(c)
		var hardened bool
		if strings.HasSuffix(c, "'") {
			hardened = true
			c = strings.TrimSuffix(c, "'")
		}

		value := uint32(0)
		if hardened {
			value = hardenedOffset
		}
		n, ok := new(big.Int).SetString(c, 10)
		if !ok {
			return nil, errors.Errorf("hdwallet: invalid path segment %q", c)
		}
		max := int64(math.MaxUint32) - int64(value)
		if n.Sign() < 0 || n.Cmp(big.NewInt(max)) > 0 {
			return nil, errors.Errorf("hdwallet: path segment %v out of range", n)
		}
		value += uint32(n.Uint64())
		result = append(result, value)
	}
	return result, nil
}

// String renders the path back to its canonical "m/44'/60'/0'/0/0" form.
func (p Path) String() string {
	b := strings.Builder{}
	b.WriteString("m")
	for _, component := range p {
		hardened := component >= hardenedOffset
		if hardened {
			component -= hardenedOffset
		}
		fmt.Fprintf(&b, "/%d", component)
		if hardened {
			b.WriteString("'")
		}
	}
	return b.String()
}

// NewMnemonic generates a fresh BIP-39 mnemonic of the given entropy size in
// bits (128 for 12 words, 256 for 24 words).
func NewMnemonic(entropyBits int) (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", errors.Wrap(err, "hdwallet: failed to generate entropy")
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "hdwallet: failed to encode mnemonic")
	}
	return mnemonic, nil
}

// MnemonicToEntropy recovers the raw entropy a mnemonic phrase encodes.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, errors.Wrap(err, "hdwallet: invalid mnemonic")
	}
	return entropy, nil
}

// EntropyToMnemonic is the inverse of MnemonicToEntropy.
func EntropyToMnemonic(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "hdwallet: failed to encode entropy")
	}
	return mnemonic, nil
}

// DerivePrivateKey walks path from the master key seeded by mnemonic and
// returns the 32-byte private key at the leaf. path defaults to DefaultPath
// when empty.
func DerivePrivateKey(mnemonic, path string) ([]byte, error) {
	if path == "" {
		path = DefaultPath
	}
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	seed := bip39.NewSeed(mnemonic, "")
	defer zero(seed)

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "hdwallet: failed to derive master key")
	}
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "hdwallet: failed to derive child key at index %d", index)
		}
	}
	return key.Key, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
