// Package ecaddress derives and validates secp256k1 addresses from private
// key material. It is a thin, dependency-backed wrapper around
// github.com/ethereum/go-ethereum/crypto and common: the keystore codec
// never implements elliptic-curve or Keccak-256 math itself.
package ecaddress

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// PrivateKeyLen is the canonical byte length of a secp256k1 scalar.
const PrivateKeyLen = 32

// Of derives the EIP-55-checksummed address for a 32-byte private key.
func Of(privateKey []byte) (common.Address, error) {
	if len(privateKey) != PrivateKeyLen {
		return common.Address{}, errors.Errorf("ecaddress: private key must be %d bytes, got %d", PrivateKeyLen, len(privateKey))
	}
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "ecaddress: invalid private key")
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Checksum canonicalizes a hex address (with or without "0x") to its EIP-55
// checksummed form.
func Checksum(hexAddr string) (common.Address, error) {
	if !common.IsHexAddress(hexAddr) {
		return common.Address{}, errors.Errorf("ecaddress: %q is not a valid hex address", hexAddr)
	}
	return common.HexToAddress(hexAddr), nil
}

// Zero overwrites a private key in place. Callers must invoke this on every
// exit path once the key is no longer needed.
func Zero(privateKey []byte) {
	for i := range privateKey {
		privateKey[i] = 0
	}
}

// ZeroECDSA overwrites the scalar backing an *ecdsa.PrivateKey, mirroring
// accounts/keystore's zeroKey.
func ZeroECDSA(key *ecdsa.PrivateKey) {
	if key == nil || key.D == nil {
		return
	}
	b := key.D.Bits()
	for i := range b {
		b[i] = 0
	}
}
