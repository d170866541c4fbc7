package authn

import "errors"

var (
	// ErrAuthenticationFailed is returned for every credential failure.
	// Unknown username, wrong passphrase, and bad one-time code are
	// deliberately indistinguishable.
	ErrAuthenticationFailed = errors.New("invalid username, passphrase, or two-factor code")

	// ErrStoreRequired is returned by New when no account store is provided.
	ErrStoreRequired = errors.New("account store is required")

	// ErrHasherRequired is returned by New when no passphrase hasher is
	// provided.
	ErrHasherRequired = errors.New("passphrase hasher is required")

	// ErrDependencyRequired is returned by New when the second-factor,
	// throttle, or session dependency is missing.
	ErrDependencyRequired = errors.New("missing required dependency")
)
