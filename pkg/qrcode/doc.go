// Package qrcode renders strings as PNG QR codes, used to show otpauth://
// provisioning URIs during two-factor enrollment so the operator can scan
// the secret instead of typing it.
package qrcode
