package ecaddress_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/web3keystore/keystore/internal/wallet/ecaddress"
)

func TestOf_KnownWeakKey(t *testing.T) {
	privateKey := make([]byte, ecaddress.PrivateKeyLen)
	privateKey[len(privateKey)-1] = 1

	addr, err := ecaddress.Of(privateKey)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"), addr)
}

func TestOf_WrongLength(t *testing.T) {
	_, err := ecaddress.Of(make([]byte, 31))
	assert.Error(t, err)
}

func TestOf_Deterministic(t *testing.T) {
	privateKey := make([]byte, ecaddress.PrivateKeyLen)
	privateKey[0] = 0x42
	a1, err := ecaddress.Of(privateKey)
	require.NoError(t, err)
	a2, err := ecaddress.Of(privateKey)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
}

func TestChecksum_AcceptsEitherCase(t *testing.T) {
	lower, err := ecaddress.Checksum("0x7e5f4552091a69125d5dfcb7b8c2659029395bdf")
	require.NoError(t, err)
	mixed, err := ecaddress.Checksum("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf")
	require.NoError(t, err)
	assert.Equal(t, lower, mixed)
}

func TestChecksum_RejectsGarbage(t *testing.T) {
	_, err := ecaddress.Checksum("not-an-address")
	assert.Error(t, err)
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	ecaddress.Zero(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
}
