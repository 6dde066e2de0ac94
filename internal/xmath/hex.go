package xmath

import "errors"

// ErrBadHexDigit indicates a byte outside the [0-9a-f] hex alphabet.
var ErrBadHexDigit = errors.New("xmath: invalid hex digit")

// DecodeHexNibble decodes a single lowercase hex digit (0-9, a-f) to its
// 4-bit value.
func DecodeHexNibble(c byte) (uint64, error) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, nil
	default:
		return 0, ErrBadHexDigit
	}
}

// DecodeHexRun decodes a run of hex digits (most-significant digit
// first, no endian concerns) into a uint64. Used to unpack fixed-width
// fields from the frozen strategy table.
func DecodeHexRun(s string) (uint64, error) {
	var v uint64

	for i := 0; i < len(s); i++ {
		nibble, err := DecodeHexNibble(s[i])
		if err != nil {
			return 0, err
		}

		v = v<<4 | nibble
	}

	return v, nil
}
