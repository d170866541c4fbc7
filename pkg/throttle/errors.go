package throttle

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrThrottled is the sentinel matched by errors.Is against a
	// ThrottledError. Callers needing the remaining wait use errors.As.
	ErrThrottled = errors.New("too many failed login attempts")

	// ErrStoreRequired is returned by New when no store is provided.
	ErrStoreRequired = errors.New("throttle store is required")

	// ErrInvalidMaxAttempts is returned by New for a non-positive attempt limit.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrInvalidPeriod is returned by New for a non-positive attempt period.
	ErrInvalidPeriod = errors.New("attempt period must be positive")
)

// ThrottledError reports that an account is in cooldown. RetryAfter is the
// time remaining until the next attempt will be evaluated, rounded up to a
// whole second so the message never claims a zero wait.
type ThrottledError struct {
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("too many failed login attempts, please wait at least %d seconds", int(e.RetryAfter.Seconds()))
}

// Is makes errors.Is(err, ErrThrottled) match.
func (e *ThrottledError) Is(target error) bool {
	return target == ErrThrottled
}
