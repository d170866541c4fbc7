package session

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated operator's server-side session state.
type Session struct {
	ID        uuid.UUID
	Token     string
	AccountID int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session is past its expiry at the given time.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
