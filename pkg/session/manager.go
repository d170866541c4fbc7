package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

// Manager issues, validates, and revokes sessions.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a session manager over the given store.
func NewManager(store Store, cfg Config, opts ...ManagerOption) (*Manager, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	m := &Manager{
		store: store,
		ttl:   cfg.TTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Issue creates a new session for the account and persists it.
func (m *Manager) Issue(ctx context.Context, accountID int64) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := m.now()
	sess := &Session{
		ID:        uuid.New(),
		Token:     token,
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Create(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// Validate resolves a token to its live session. Expired sessions are
// removed from the store and reported as ErrExpired.
func (m *Manager) Validate(ctx context.Context, token string) (*Session, error) {
	sess, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.IsExpired(m.now()) {
		if err := m.store.Delete(ctx, token); err != nil {
			return nil, err
		}
		return nil, ErrExpired
	}
	return sess, nil
}

// Destroy revokes a single session. Revoking an unknown token succeeds.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if err := m.store.Delete(ctx, token); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// InvalidateAccount revokes every session the account holds, returning how
// many were revoked. Called on passphrase change and second-factor reset.
func (m *Manager) InvalidateAccount(ctx context.Context, accountID int64) (int, error) {
	return m.store.DeleteByAccountID(ctx, accountID)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrFailedToGenerateToken, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
