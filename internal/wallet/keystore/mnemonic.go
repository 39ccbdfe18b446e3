package keystore

import (
	"bytes"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/web3keystore/keystore/internal/wallet/hdwallet"
)

const xEthersVersion = "0.1"

// decryptMnemonicSection decodes the x-ethers section, decrypts the
// entropy under derivedKey[32:64], recovers the mnemonic, walks its path,
// and cross-checks against the private key already recovered from the
// Web3 section.
func decryptMnemonicSection(x *xEthersJSON, derivedKey, webPrivateKey []byte) (mnemonic, path string, err error) {
	iv, err := decodeHex(x.MnemonicCounter)
	if err != nil {
		return "", "", err
	}
	ciphertext, err := decodeHex(x.MnemonicCiphertext)
	if err != nil {
		return "", "", err
	}

	entropy, err := aesCTRXOR(derivedKey[2*aesKeyLen:4*aesKeyLen], iv, ciphertext)
	if err != nil {
		return "", "", err
	}
	defer zero(entropy)

	mnemonic, err = hdwallet.EntropyToMnemonic(entropy)
	if err != nil {
		return "", "", errors.Wrap(err, "keystore: x-ethers entropy does not decode to a mnemonic")
	}

	path = x.Path
	if path == "" {
		path = hdwallet.DefaultPath
	}

	derived, err := hdwallet.DerivePrivateKey(mnemonic, path)
	if err != nil {
		return "", "", errors.Wrap(err, "keystore: failed to derive from recovered mnemonic")
	}
	defer zero(derived)

	if !bytes.Equal(derived, webPrivateKey) {
		return "", "", ErrMnemonicMismatch
	}
	return mnemonic, path, nil
}

// encryptMnemonicSection verifies the caller's mnemonic truly derives
// privateKey along path, then encrypts its entropy under
// derivedKey[32:64] with a fresh IV.
func encryptMnemonicSection(mnemonic, path string, privateKey, derivedKey, iv []byte) (*xEthersJSON, error) {
	if path == "" {
		path = hdwallet.DefaultPath
	}
	derived, err := hdwallet.DerivePrivateKey(mnemonic, path)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: failed to derive from supplied mnemonic")
	}
	defer zero(derived)
	if !bytes.Equal(derived, privateKey) {
		return nil, ErrMnemonicMismatch
	}

	entropy, err := hdwallet.MnemonicToEntropy(mnemonic)
	if err != nil {
		return nil, err
	}
	defer zero(entropy)

	ciphertext, err := aesCTRXOR(derivedKey[2*aesKeyLen:4*aesKeyLen], iv, entropy)
	if err != nil {
		return nil, err
	}

	return &xEthersJSON{
		Version:            xEthersVersion,
		MnemonicCounter:    hex.EncodeToString(iv),
		MnemonicCiphertext: hex.EncodeToString(ciphertext),
		Path:               path,
	}, nil
}
