package keystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CaseInsensitiveSingleMatch(t *testing.T) {
	node := map[string]interface{}{
		"Crypto": map[string]interface{}{"KDF": "scrypt"},
	}
	v, ok, err := lookup(node, "crypto/kdf")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "scrypt", v)
}

func TestLookup_Missing(t *testing.T) {
	node := map[string]interface{}{"crypto": map[string]interface{}{}}
	_, ok, err := lookup(node, "crypto/kdf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookup_AmbiguousSiblingKeys(t *testing.T) {
	node := map[string]interface{}{
		"Crypto": map[string]interface{}{"kdf": "scrypt"},
		"crypto": map[string]interface{}{"kdf": "pbkdf2"},
	}
	_, _, err := lookup(node, "crypto/kdf")
	assert.ErrorIs(t, err, ErrAmbiguousKey)
}

func TestLookup_AmbiguityAtLeafLevel(t *testing.T) {
	node := map[string]interface{}{
		"crypto": map[string]interface{}{"KDF": "scrypt", "kdf": "pbkdf2"},
	}
	_, _, err := lookup(node, "crypto/kdf")
	assert.ErrorIs(t, err, ErrAmbiguousKey)
}

func TestParamInt_AcceptsFloat64AndInt(t *testing.T) {
	node := map[string]interface{}{"n": float64(1024), "r": int(8)}
	n, ok, err := paramInt(node, "n")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1024, n)

	r, ok, err := paramInt(node, "r")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, r)
}

func TestLookupHex_DecodesLooseHex(t *testing.T) {
	node := map[string]interface{}{"iv": "0xdead"}
	b, ok, err := lookupHex(node, "iv")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad}, b)
}
