package keystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/web3keystore/keystore/internal/wallet/hdwallet"
)

func TestMnemonicSection_RoundTrip(t *testing.T) {
	mnemonic, err := hdwallet.NewMnemonic(128)
	require.NoError(t, err)
	privateKey, err := hdwallet.DerivePrivateKey(mnemonic, hdwallet.DefaultPath)
	require.NoError(t, err)

	derivedKey := make([]byte, derivedKeyLen)
	for i := range derivedKey {
		derivedKey[i] = byte(i + 1)
	}
	iv := make([]byte, ivLen)

	x, err := encryptMnemonicSection(mnemonic, hdwallet.DefaultPath, privateKey, derivedKey, iv)
	require.NoError(t, err)

	gotMnemonic, gotPath, err := decryptMnemonicSection(x, derivedKey, privateKey)
	require.NoError(t, err)
	assert.Equal(t, mnemonic, gotMnemonic)
	assert.Equal(t, hdwallet.DefaultPath, gotPath)
}

func TestMnemonicSection_RejectsMismatchedPrivateKey(t *testing.T) {
	mnemonic, err := hdwallet.NewMnemonic(128)
	require.NoError(t, err)

	other := make([]byte, 32)
	other[0] = 0xff
	derivedKey := make([]byte, derivedKeyLen)
	iv := make([]byte, ivLen)

	_, err = encryptMnemonicSection(mnemonic, hdwallet.DefaultPath, other, derivedKey, iv)
	assert.ErrorIs(t, err, ErrMnemonicMismatch)
}

func TestMnemonicSection_DecryptDetectsWrongDerivedKey(t *testing.T) {
	mnemonic, err := hdwallet.NewMnemonic(128)
	require.NoError(t, err)
	privateKey, err := hdwallet.DerivePrivateKey(mnemonic, hdwallet.DefaultPath)
	require.NoError(t, err)

	derivedKey := make([]byte, derivedKeyLen)
	iv := make([]byte, ivLen)
	x, err := encryptMnemonicSection(mnemonic, hdwallet.DefaultPath, privateKey, derivedKey, iv)
	require.NoError(t, err)

	wrongDerivedKey := make([]byte, derivedKeyLen)
	wrongDerivedKey[40] = 0xff // perturb the mnemonic-AES slice, [32:64)

	_, _, err = decryptMnemonicSection(x, wrongDerivedKey, privateKey)
	assert.Error(t, err)
}
