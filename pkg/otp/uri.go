package otp

import (
	"encoding/base32"
	"fmt"
	"net/url"
)

// URIParams describes a provisioning URI for authenticator app enrollment.
type URIParams struct {
	Secret      []byte // Raw secret key bytes (required)
	AccountName string // Operator identifier shown in the app (required)
	Issuer      string // Service name shown in the app (required)
	HOTP        bool   // Counter-based variant instead of time-based
	Counter     uint64 // Initial counter, HOTP only
}

// Validate ensures all required parameters are present.
func (p URIParams) Validate() error {
	if len(p.Secret) == 0 {
		return ErrEmptySecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// ProvisioningURI builds an otpauth:// URI in the Key Uri Format.
// The secret is rendered unpadded Base32, the encoding authenticator
// apps expect regardless of how the secret is stored server-side.
func ProvisioningURI(params URIParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(params.Secret))
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", "SHA1")
	query.Set("digits", fmt.Sprintf("%d", Digits))

	variant := "totp"
	if params.HOTP {
		variant = "hotp"
		query.Set("counter", fmt.Sprintf("%d", params.Counter))
	} else {
		query.Set("period", fmt.Sprintf("%d", Period))
	}

	return fmt.Sprintf("otpauth://%s/%s?%s", variant, label, query.Encode()), nil
}
