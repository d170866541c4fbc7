package session

import "context"

// Store defines the interface for session persistence.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, sess *Session) error

	// GetByToken retrieves a session by its bearer token.
	GetByToken(ctx context.Context, token string) (*Session, error)

	// Delete removes a session by token. Deleting an absent token is not an
	// error.
	Delete(ctx context.Context, token string) error

	// DeleteByAccountID removes every session belonging to the account,
	// returning how many were removed.
	DeleteByAccountID(ctx context.Context, accountID int64) (int, error)

	// DeleteExpired removes all sessions past their expiry.
	DeleteExpired(ctx context.Context) error
}
