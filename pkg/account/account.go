package account

import "time"

const (
	// MinUsernameLen guards against single-character operator handles.
	MinUsernameLen = 3

	// MaxUsernameLen bounds index size; generous enough for any real handle.
	MaxUsernameLen = 64
)

// Account represents a privileged operator of the submission platform.
// The passphrase is never stored; only its digest is.
type Account struct {
	ID             int64
	Username       string
	PasswordDigest string

	// One-time-password state. OTPSecret holds raw key bytes; IsHOTP selects
	// the counter-based variant and HOTPCounter only advances, never rewinds.
	OTPSecret   []byte
	IsHOTP      bool
	HOTPCounter uint64

	IsAdmin bool

	// Login-throttle bookkeeping, mutated atomically by the stores.
	FailedAttemptCount  int
	LastFailedAttemptAt time.Time

	CreatedAt time.Time
}

// ValidateUsername checks the username length policy.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLen || len(username) > MaxUsernameLen {
		return ErrInvalidUsername
	}
	return nil
}
