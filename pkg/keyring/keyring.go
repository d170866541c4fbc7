package keyring

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// ErrKeyNotFound is returned by GetKey when no key exists for the
// filesystem identifier.
var ErrKeyNotFound = errors.New("no key for filesystem identifier")

// defaultService namespaces this application's entries in the OS store.
const defaultService = "sealpost"

// Store adapts the OS credential store to the deletion pipeline's key
// operations, one entry per source filesystem identifier.
type Store struct {
	service string
}

// Option configures a Store.
type Option func(*Store)

// WithService overrides the credential-store service name.
func WithService(service string) Option {
	return func(s *Store) {
		s.service = service
	}
}

// New creates a keyring store.
func New(opts ...Option) *Store {
	s := &Store{service: defaultService}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetKey stores key material for the filesystem identifier.
func (s *Store) SetKey(ctx context.Context, fsid, key string) error {
	if err := keyring.Set(s.service, fsid, key); err != nil {
		return fmt.Errorf("store key: %w", err)
	}
	return nil
}

// GetKey returns the key material for the filesystem identifier.
func (s *Store) GetKey(ctx context.Context, fsid string) (string, error) {
	key, err := keyring.Get(s.service, fsid)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("read key: %w", err)
	}
	return key, nil
}

// DeleteKey removes the key. Deleting an absent key succeeds, so the
// deletion pipeline stays idempotent across re-runs.
func (s *Store) DeleteKey(ctx context.Context, fsid string) error {
	if err := keyring.Delete(s.service, fsid); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete key: %w", err)
	}
	return nil
}

// HasKey reports whether a key exists for the filesystem identifier.
func (s *Store) HasKey(ctx context.Context, fsid string) bool {
	_, err := s.GetKey(ctx, fsid)
	return err == nil
}
