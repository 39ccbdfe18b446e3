// Package keystore implements encrypted storage of secp256k1 private keys
// (and, optionally, the BIP-39 mnemonic and BIP-32 path that produced them)
// in the Web3 Secret Storage Version 3 JSON format, extended with the
// "x-ethers" encrypted-mnemonic section.
//
// Keys are never written to or read from disk by this package: callers own
// all file I/O. See https://github.com/ethereum/wiki/wiki/Web3-Secret-Storage-Definition
// for the wire format this codec implements.
package keystore

import (
	"github.com/ethereum/go-ethereum/common"
)

const (
	version3 = 3

	// defaultClient is the producer tag written to x-ethers.client when
	// EncryptOptions.Client is empty.
	defaultClient = "go-wallet"

	// StandardScryptN is the scrypt N parameter using ~256MB memory and
	// ~1s CPU time on a modern processor.
	StandardScryptN = 1 << 18
	// StandardScryptP is the scrypt P parameter paired with StandardScryptN.
	StandardScryptP = 1

	// LightScryptN is the scrypt N parameter using ~4MB memory and ~100ms
	// CPU time on a modern processor, for interactive/test use.
	LightScryptN = 1 << 12
	// LightScryptP is the scrypt P parameter paired with LightScryptN.
	LightScryptP = 6

	scryptR     = 8
	scryptDKLen = 32 // the Web3-visible half; the codec always requests 64 raw bytes

	aesKeyLen   = 16
	ivLen       = 16
	uuidSeedLen = 16
	saltLen     = 32
	macKeyLen   = 16
)

// Password is password material normalized to bytes: a string is treated
// as UTF-8, a []byte is passed through unmodified.
type Password []byte

// NewPassword normalizes a string password to Password bytes.
func NewPassword(s string) Password { return Password([]byte(s)) }

// ProgressFunc receives monotonically non-decreasing KDF progress in
// [0.0, 1.0]; the final call is 1.0 when the KDF succeeds. May be nil.
type ProgressFunc func(float32)

// Account is the decoded result of Decrypt and the required input to
// Encrypt. Path must be empty when Mnemonic is empty. Encrypt accepts a
// Mnemonic with an empty Path and uses hdwallet.DefaultPath for it; Decrypt
// returns Mnemonic and Path either both empty or both set.
type Account struct {
	Address    common.Address
	PrivateKey []byte // 32 bytes, plaintext
	Mnemonic   string
	Path       string
}

// ScryptProfile bundles the scrypt work-factor knobs exposed through
// EncryptOptions. The zero value is not valid; use StandardScryptProfile or
// LightScryptProfile.
type ScryptProfile struct {
	N int
	R int
	P int
}

// StandardScryptProfile is suitable for at-rest storage of high-value keys.
func StandardScryptProfile() ScryptProfile {
	return ScryptProfile{N: StandardScryptN, R: scryptR, P: StandardScryptP}
}

// LightScryptProfile trades security margin for speed, suitable for tests
// and interactive tooling.
func LightScryptProfile() ScryptProfile {
	return ScryptProfile{N: LightScryptN, R: scryptR, P: LightScryptP}
}

// EncryptOptions configures Encrypt. All fields are optional; see the
// field comments below for the effect and default of each.
type EncryptOptions struct {
	// IV overrides the 16-byte private-key AES-CTR counter. Random if nil.
	IV []byte
	// Salt overrides the 32-byte scrypt salt. Random if nil.
	Salt []byte
	// UUIDSeed overrides the 16-byte seed used to build the document's
	// UUIDv4 id. Random if nil.
	UUIDSeed []byte
	// Client is the producer tag written to x-ethers.client. It is not part
	// of x-ethers.gethFilename. Defaults to defaultClient.
	Client string
	// Scrypt overrides the work factor. Defaults to StandardScryptProfile.
	Scrypt *ScryptProfile
	// Entropy is reserved and currently rejected if non-nil; see DESIGN.md.
	Entropy []byte
}

// cipherparamsJSON is the on-disk "crypto.cipherparams" object.
type cipherparamsJSON struct {
	IV string `json:"iv"`
}

// cryptoJSON is the on-disk "crypto" object of a V3 keystore document.
type cryptoJSON struct {
	Cipher       string                 `json:"cipher"`
	CipherText   string                 `json:"ciphertext"`
	CipherParams cipherparamsJSON       `json:"cipherparams"`
	KDF          string                 `json:"kdf"`
	KDFParams    map[string]interface{} `json:"kdfparams"`
	MAC          string                 `json:"mac"`
}

// xEthersJSON is the on-disk optional "x-ethers" extension carrying the
// encrypted mnemonic.
type xEthersJSON struct {
	Version            string `json:"version"`
	Client             string `json:"client"`
	GethFilename       string `json:"gethFilename"`
	MnemonicCounter    string `json:"mnemonicCounter"`
	MnemonicCiphertext string `json:"mnemonicCiphertext"`
	Path               string `json:"path"`
}

// encryptedKeyJSONV3 is the full on-disk document emitted by Encrypt.
// Decrypt does NOT unmarshal into this type directly — it resolves fields
// through the case-insensitive path resolver in jsonpath.go, since
// "Crypto" vs "crypto" casing varies by producer.
type encryptedKeyJSONV3 struct {
	Address string       `json:"address"`
	Crypto  cryptoJSON   `json:"crypto"`
	ID      string       `json:"id"`
	Version int          `json:"version"`
	XEthers *xEthersJSON `json:"x-ethers,omitempty"`
}
