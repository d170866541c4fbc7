package otp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealpost/sealpost/pkg/otp"
)

// rfc4226Key is the shared secret from RFC 4226 Appendix D.
var rfc4226Key = []byte("12345678901234567890")

// rfc4226Codes are the published test vectors for counters 0 through 9.
var rfc4226Codes = []string{
	"755224", "287082", "359152", "969429", "338314",
	"254676", "287922", "162583", "399871", "520489",
}

func TestHOTPReferenceVectors(t *testing.T) {
	t.Parallel()
	for counter, want := range rfc4226Codes {
		assert.Equal(t, want, otp.HOTP(rfc4226Key, uint64(counter)), "counter %d", counter)
	}
}

func TestGenerateSecret(t *testing.T) {
	t.Parallel()

	first, err := otp.GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, first, otp.SecretLen)

	second, err := otp.GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTOTPMatchesStepHOTP(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 1, 12, 0, 15, 0, time.UTC)
	want := otp.HOTP(rfc4226Key, uint64(at.Unix()/otp.Period))
	assert.Equal(t, want, otp.TOTP(rfc4226Key, at))
}

func TestValidateTOTP(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 15, 0, time.UTC)

	tests := []struct {
		name string
		code string
		at   time.Time
		skew uint
		want bool
	}{
		{name: "current step", code: otp.TOTP(rfc4226Key, now), at: now, skew: 1, want: true},
		{name: "previous step within skew", code: otp.TOTP(rfc4226Key, now.Add(-otp.Period*time.Second)), at: now, skew: 1, want: true},
		{name: "next step within skew", code: otp.TOTP(rfc4226Key, now.Add(otp.Period*time.Second)), at: now, skew: 1, want: true},
		{name: "two steps back outside skew", code: otp.TOTP(rfc4226Key, now.Add(-2*otp.Period*time.Second)), at: now, skew: 1, want: false},
		{name: "zero skew rejects neighbors", code: otp.TOTP(rfc4226Key, now.Add(otp.Period*time.Second)), at: now, skew: 0, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, err := otp.ValidateTOTP(rfc4226Key, tt.code, tt.at, tt.skew)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestValidateTOTPInputErrors(t *testing.T) {
	t.Parallel()

	now := time.Now()

	_, err := otp.ValidateTOTP(nil, "123456", now, 1)
	assert.ErrorIs(t, err, otp.ErrEmptySecret)

	for _, code := range []string{"", "12345", "1234567", "12345a"} {
		_, err := otp.ValidateTOTP(rfc4226Key, code, now, 1)
		assert.ErrorIs(t, err, otp.ErrInvalidCodeFormat, "code %q", code)
	}
}

func TestValidateHOTPLookahead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		counter     uint64
		code        string
		lookahead   uint
		wantMatched uint64
		wantOK      bool
	}{
		{name: "exact counter", counter: 3, code: rfc4226Codes[3], lookahead: 0, wantMatched: 3, wantOK: true},
		{name: "one ahead within window", counter: 3, code: rfc4226Codes[4], lookahead: 1, wantMatched: 4, wantOK: true},
		{name: "ahead of window", counter: 3, code: rfc4226Codes[5], lookahead: 1, wantOK: false},
		{name: "behind counter", counter: 3, code: rfc4226Codes[2], lookahead: 5, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			matched, ok, err := otp.ValidateHOTP(rfc4226Key, tt.counter, tt.code, tt.lookahead)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMatched, matched)
			}
		})
	}
}

func TestProvisioningURI(t *testing.T) {
	t.Parallel()

	secret := []byte("12345678901234567890")

	t.Run("totp", func(t *testing.T) {
		t.Parallel()
		uri, err := otp.ProvisioningURI(otp.URIParams{
			Secret:      secret,
			AccountName: "dellsberg",
			Issuer:      "SealPost",
		})
		require.NoError(t, err)
		assert.Contains(t, uri, "otpauth://totp/SealPost:dellsberg?")
		assert.Contains(t, uri, "secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
		assert.Contains(t, uri, "period=30")
	})

	t.Run("hotp carries counter", func(t *testing.T) {
		t.Parallel()
		uri, err := otp.ProvisioningURI(otp.URIParams{
			Secret:      secret,
			AccountName: "dellsberg",
			Issuer:      "SealPost",
			HOTP:        true,
		})
		require.NoError(t, err)
		assert.Contains(t, uri, "otpauth://hotp/")
		assert.Contains(t, uri, "counter=0")
		assert.NotContains(t, uri, "period=")
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		_, err := otp.ProvisioningURI(otp.URIParams{AccountName: "a", Issuer: "b"})
		assert.ErrorIs(t, err, otp.ErrEmptySecret)
		_, err = otp.ProvisioningURI(otp.URIParams{Secret: secret, Issuer: "b"})
		assert.ErrorIs(t, err, otp.ErrMissingAccountName)
		_, err = otp.ProvisioningURI(otp.URIParams{Secret: secret, AccountName: "a"})
		assert.ErrorIs(t, err, otp.ErrMissingIssuer)
	})
}
