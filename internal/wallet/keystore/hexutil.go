package keystore

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// decodeHex accepts a string that may or may not carry a "0x" prefix,
// left-pads an odd-length string with a single '0', and passes decoded
// byte slices through untouched.
func decodeHex(v interface{}) ([]byte, error) {
	switch t := v.(type) {
	case []byte:
		return t, nil
	case string:
		s := strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
		if len(s)%2 != 0 {
			s = "0" + s
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: expected string or []byte, got %T", ErrInvalidHex, v)
	}
}

// zpad renders n in decimal, left-padded with '0' to width.
func zpad(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
