package hexsecret

import (
	"encoding/hex"
	"errors"
	"strings"
	"unicode"
)

// Normalize strips all whitespace from s, validates the remainder as
// even-length hexadecimal, and returns it uppercased.
//
// Whitespace is removed before both checks so a valid secret typed in
// spacer groups (e.g. pairs of hex digits) is accepted. Parity is checked
// before the alphabet so a single mistyped trailing character reports the
// more actionable odd-length reason.
func Normalize(s string) (string, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(stripped)%2 != 0 {
		return "", errors.Join(ErrInvalidSecretFormat, ErrOddLength)
	}

	for _, r := range stripped {
		if !isHexDigit(r) {
			return "", errors.Join(ErrInvalidSecretFormat, ErrNonHex)
		}
	}

	return strings.ToUpper(stripped), nil
}

// Decode normalizes s and returns the raw secret bytes.
func Decode(s string) ([]byte, error) {
	normalized, err := Normalize(s)
	if err != nil {
		return nil, err
	}
	// Cannot fail after Normalize, but hex.DecodeString keeps the codec honest.
	raw, err := hex.DecodeString(normalized)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecretFormat, err)
	}
	return raw, nil
}

// Encode renders raw secret bytes in the canonical uppercase hex form.
func Encode(raw []byte) string {
	return strings.ToUpper(hex.EncodeToString(raw))
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
