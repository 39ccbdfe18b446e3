package keystore

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/web3keystore/keystore/internal/wallet/ecaddress"
)

// Decrypt recovers the Account a keystore document and password encode.
// The returned PrivateKey (and, if present, Mnemonic/Path) have already
// been validated against Address.
func Decrypt(ctx context.Context, doc []byte, password Password, progress ProgressFunc) (Account, error) {
	defer zero(password)

	var raw map[string]interface{}
	if err := json.Unmarshal(doc, &raw); err != nil {
		return Account{}, errors.Wrap(ErrBadJSON, err.Error())
	}

	cryptoNode, ok, err := lookup(raw, "crypto")
	if err != nil {
		return Account{}, err
	}
	if !ok {
		return Account{}, errors.Wrap(ErrBadJSON, "missing crypto section")
	}

	cipherName, ok, err := lookupString(cryptoNode, "cipher")
	if err != nil {
		return Account{}, err
	}
	if !ok || !strings.EqualFold(cipherName, "aes-128-ctr") {
		return Account{}, ErrUnsupportedCipher
	}

	derivedKey, err := deriveKey(ctx, cryptoNode, password, progress)
	if err != nil {
		return Account{}, err
	}
	defer zero(derivedKey)

	ciphertext, ok, err := lookupHex(cryptoNode, "ciphertext")
	if err != nil {
		return Account{}, err
	}
	if !ok {
		return Account{}, errors.Wrap(ErrBadJSON, "missing crypto.ciphertext")
	}

	macWant, ok, err := lookupString(cryptoNode, "mac")
	if err != nil {
		return Account{}, err
	}
	if !ok {
		return Account{}, errors.Wrap(ErrBadJSON, "missing crypto.mac")
	}
	if err := checkMAC(derivedKey, ciphertext, macWant); err != nil {
		return Account{}, err
	}

	iv, ok, err := lookupHex(cryptoNode, "cipherparams/iv")
	if err != nil {
		return Account{}, err
	}
	if !ok {
		return Account{}, errors.Wrap(ErrBadJSON, "missing crypto.cipherparams.iv")
	}

	privateKey, err := aesCTRXOR(derivedKey[:aesKeyLen], iv, ciphertext)
	if err != nil {
		return Account{}, err
	}

	address, err := ecaddress.Of(privateKey)
	if err != nil {
		zero(privateKey)
		return Account{}, err
	}

	if docAddr, ok, err := lookupString(raw, "address"); err != nil {
		zero(privateKey)
		return Account{}, err
	} else if ok && docAddr != "" {
		checksummed, err := ecaddress.Checksum(docAddr)
		if err != nil {
			zero(privateKey)
			return Account{}, errors.Wrap(ErrAddressMismatch, err.Error())
		}
		if checksummed != address {
			zero(privateKey)
			return Account{}, ErrAddressMismatch
		}
	}

	account := Account{Address: address, PrivateKey: privateKey}

	xEthersNode, hasXEthers, err := lookup(raw, "x-ethers")
	if err != nil {
		zero(privateKey)
		return Account{}, err
	}
	if hasXEthers {
		xEthersVer, _, err := lookupString(xEthersNode, "version")
		if err != nil {
			zero(privateKey)
			return Account{}, err
		}
		if xEthersVer == xEthersVersion {
			x, err := decodeXEthers(xEthersNode)
			if err != nil {
				zero(privateKey)
				return Account{}, err
			}
			mnemonic, path, err := decryptMnemonicSection(x, derivedKey, privateKey)
			if err != nil {
				zero(privateKey)
				return Account{}, err
			}
			account.Mnemonic = mnemonic
			account.Path = path
		}
	}

	return account, nil
}

// decodeXEthers pulls the handful of fields the mnemonic sub-codec needs
// out of the already-resolved x-ethers subtree.
func decodeXEthers(node interface{}) (*xEthersJSON, error) {
	counter, ok, err := lookupString(node, "mnemonicCounter")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrBadJSON, "missing x-ethers.mnemonicCounter")
	}
	ciphertext, ok, err := lookupString(node, "mnemonicCiphertext")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrBadJSON, "missing x-ethers.mnemonicCiphertext")
	}
	path, _, err := lookupString(node, "path")
	if err != nil {
		return nil, err
	}
	return &xEthersJSON{
		MnemonicCounter:    counter,
		MnemonicCiphertext: ciphertext,
		Path:               path,
	}, nil
}
