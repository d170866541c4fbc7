package otp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// Digits is the length of generated codes (RFC 4226 minimum, app standard).
	Digits = 6

	// Period is the TOTP time step in seconds (RFC 6238 standard).
	Period = 30

	// SecretLen is the generated secret size: 160 bits per the RFC 4226
	// recommendation, which renders as 40 hexadecimal characters.
	SecretLen = 20
)

// GenerateSecret returns a fresh cryptographically random secret key.
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, SecretLen)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Join(ErrFailedToGenerateSecret, err)
	}
	return secret, nil
}

// HOTP computes the RFC 4226 code for the given key and counter value.
func HOTP(key []byte, counter uint64) string {
	// Counter is encoded big-endian into 8 bytes (RFC 4226 requirement).
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	sum := mac.Sum(nil)

	// Dynamic truncation: the low 4 bits of the final byte select a 4-byte
	// window; the MSB is cleared to keep the value positive.
	offset := sum[len(sum)-1] & 0x0f
	code := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]&0xff) << 16) |
		(int(sum[offset+2]&0xff) << 8) |
		int(sum[offset+3]&0xff)

	code %= int(math.Pow10(Digits))

	return fmt.Sprintf("%0*d", Digits, code)
}

// TOTP computes the RFC 6238 code for the time step containing t.
func TOTP(key []byte, t time.Time) string {
	return HOTP(key, uint64(t.Unix()/Period))
}

// ValidateTOTP reports whether code is valid for key at time t, accepting
// codes from skew time steps on either side of the current one to tolerate
// client clock drift.
func ValidateTOTP(key []byte, code string, t time.Time, skew uint) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptySecret
	}
	if !validCodeFormat(code) {
		return false, ErrInvalidCodeFormat
	}

	step := t.Unix() / Period
	for i := -int64(skew); i <= int64(skew); i++ {
		if codesEqual(HOTP(key, uint64(step+i)), code) {
			return true, nil
		}
	}

	return false, nil
}

// ValidateHOTP reports whether code matches any counter value in
// [counter, counter+lookahead]. On a match it returns the counter value
// that produced the code; the caller must persist a counter strictly past
// it so the same code can never be accepted twice.
func ValidateHOTP(key []byte, counter uint64, code string, lookahead uint) (matched uint64, ok bool, err error) {
	if len(key) == 0 {
		return 0, false, ErrEmptySecret
	}
	if !validCodeFormat(code) {
		return 0, false, ErrInvalidCodeFormat
	}

	for i := uint64(0); i <= uint64(lookahead); i++ {
		c := counter + i
		if codesEqual(HOTP(key, c), code) {
			return c, true, nil
		}
	}

	return 0, false, nil
}

func validCodeFormat(code string) bool {
	if len(code) != Digits {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func codesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
