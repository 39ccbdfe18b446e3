package keystore

import "strings"

// lookup resolves a "a/b/c" path against node, matching each segment
// case-insensitively against the keys present at that level. It is the
// load-bearing piece that lets Decrypt accept both "Crypto" and "crypto" —
// on-disk casing varies by producer.
//
// Returns (value, true, nil) when exactly one sibling key matches the
// segment at every level. Returns (nil, false, nil) when a segment has no
// match anywhere in the path (distinct from a present-but-nil value).
// Returns ErrAmbiguousKey when two or more sibling keys at the same level
// match the requested segment only by differing case.
func lookup(node interface{}, path string) (interface{}, bool, error) {
	segments := strings.Split(path, "/")
	cur := node
	for _, seg := range segments {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false, nil
		}

		var (
			matchKey   string
			matchCount int
		)
		for k := range m {
			if strings.EqualFold(k, seg) {
				matchCount++
				matchKey = k
			}
		}
		switch matchCount {
		case 0:
			return nil, false, nil
		case 1:
			cur = m[matchKey]
		default:
			return nil, false, ErrAmbiguousKey
		}
	}
	return cur, true, nil
}

// lookupString resolves path to a string value.
func lookupString(node interface{}, path string) (string, bool, error) {
	v, ok, err := lookup(node, path)
	if err != nil || !ok {
		return "", ok, err
	}
	s, ok := v.(string)
	return s, ok, nil
}

// lookupHex resolves path to loosely-encoded hex, per decodeHex.
func lookupHex(node interface{}, path string) ([]byte, bool, error) {
	v, ok, err := lookup(node, path)
	if err != nil || !ok {
		return nil, ok, err
	}
	b, err := decodeHex(v)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// paramInt resolves path to an integer. JSON numbers decode to float64;
// values produced by our own encoder pass through as int or float64
// depending on whether they went through a json.Marshal/Unmarshal round
// trip, so both are accepted.
func paramInt(node interface{}, path string) (int, bool, error) {
	v, ok, err := lookup(node, path)
	if err != nil || !ok {
		return 0, ok, err
	}
	switch n := v.(type) {
	case float64:
		return int(n), true, nil
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	default:
		return 0, false, nil
	}
}
