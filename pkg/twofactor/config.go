package twofactor

import (
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds two-factor settings loaded from environment variables.
type Config struct {
	// Issuer is the service name shown by authenticator apps.
	Issuer string `env:"TWOFACTOR_ISSUER" envDefault:"SealPost"`

	// TOTPSkew is the number of adjacent 30-second steps accepted on either
	// side of the current one, tolerating modest clock drift.
	TOTPSkew uint `env:"TWOFACTOR_TOTP_SKEW" envDefault:"1"`

	// HOTPLookahead is the number of counter values past the expected one
	// tried during verification, tolerating tokens that generated codes the
	// server never saw.
	HOTPLookahead uint `env:"TWOFACTOR_HOTP_LOOKAHEAD" envDefault:"1"`
}
