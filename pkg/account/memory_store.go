package account

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore is an in-memory account store for tests and local development.
// All mutations take the store lock, so counter and throttle updates are
// atomic with respect to concurrent callers.
type MemoryStore struct {
	mu         sync.RWMutex
	byID       map[int64]*Account
	byUsername map[string]int64
	nextID     int64
}

// NewMemoryStore creates an empty in-memory account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:       make(map[int64]*Account),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

// Create persists a new account, assigning its ID.
func (s *MemoryStore) Create(ctx context.Context, acc *Account) error {
	if err := ValidateUsername(acc.Username); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[acc.Username]; exists {
		return ErrUsernameTaken
	}

	acc.ID = s.nextID
	s.nextID++
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now()
	}

	stored := cloneAccount(acc)
	s.byID[acc.ID] = stored
	s.byUsername[acc.Username] = acc.ID

	return nil
}

// GetByID returns the account with the given id.
func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneAccount(acc), nil
}

// GetByUsername returns the account with the given username (case-sensitive).
func (s *MemoryStore) GetByUsername(ctx context.Context, username string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneAccount(s.byID[id]), nil
}

// UpdatePasswordDigest replaces the stored passphrase digest.
func (s *MemoryStore) UpdatePasswordDigest(ctx context.Context, id int64, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	acc.PasswordDigest = digest
	return nil
}

// UpdateOTPSecret atomically replaces the one-time-password secret and
// variant, resetting the HOTP counter to its initial value.
func (s *MemoryStore) UpdateOTPSecret(ctx context.Context, id int64, secret []byte, isHOTP bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	acc.OTPSecret = slices.Clone(secret)
	acc.IsHOTP = isHOTP
	acc.HOTPCounter = 0
	return nil
}

// AdvanceHOTPCounter moves the counter forward to the given value. The
// advance is conditional: if the stored counter already reached to, another
// verification claimed the code first and ErrCounterConflict is returned.
func (s *MemoryStore) AdvanceHOTPCounter(ctx context.Context, id int64, to uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	if acc.HOTPCounter >= to {
		return ErrCounterConflict
	}
	acc.HOTPCounter = to
	return nil
}

// RecordFailure increments the failed-attempt counter and stamps the attempt
// time, returning the new count. Implements the throttle store contract.
func (s *MemoryStore) RecordFailure(ctx context.Context, id int64, at time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[id]
	if !ok {
		return 0, ErrNotFound
	}
	acc.FailedAttemptCount++
	acc.LastFailedAttemptAt = at
	return acc.FailedAttemptCount, nil
}

// State returns the current failed-attempt count and last failure time.
func (s *MemoryStore) State(ctx context.Context, id int64) (int, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[id]
	if !ok {
		return 0, time.Time{}, ErrNotFound
	}
	return acc.FailedAttemptCount, acc.LastFailedAttemptAt, nil
}

// Reset zeroes the failed-attempt counter after a successful authentication.
func (s *MemoryStore) Reset(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	acc.FailedAttemptCount = 0
	acc.LastFailedAttemptAt = time.Time{}
	return nil
}

func cloneAccount(acc *Account) *Account {
	c := *acc
	c.OTPSecret = slices.Clone(acc.OTPSecret)
	return &c
}
