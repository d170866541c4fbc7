package authn

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sealpost/sealpost/pkg/account"
	"github.com/sealpost/sealpost/pkg/logger"
	"github.com/sealpost/sealpost/pkg/passhash"
	"github.com/sealpost/sealpost/pkg/session"
)

// AccountStore is the slice of account storage the service needs. The
// account package's stores satisfy it.
type AccountStore interface {
	GetByID(ctx context.Context, id int64) (*account.Account, error)
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
	UpdatePasswordDigest(ctx context.Context, id int64, digest string) error
}

// PasswordHasher derives and verifies passphrase digests. passhash.Pool
// satisfies it.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, digest string) (bool, error)
}

// SecondFactor verifies one-time codes and resets secrets. The twofactor
// manager satisfies it.
type SecondFactor interface {
	Verify(ctx context.Context, acc *account.Account, code string) error
	ResetSecret(ctx context.Context, accountID int64, input string, isHOTP bool) ([]byte, error)
}

// Throttle gates attempts per account. The throttle package's Throttle
// satisfies it.
type Throttle interface {
	Check(ctx context.Context, accountID int64) error
	Failure(ctx context.Context, accountID int64) (bool, error)
	Success(ctx context.Context, accountID int64) error
}

// SessionManager issues and revokes sessions. The session manager satisfies
// it.
type SessionManager interface {
	Issue(ctx context.Context, accountID int64) (*session.Session, error)
	InvalidateAccount(ctx context.Context, accountID int64) (int, error)
}

// Principal is the result of a successful login.
type Principal struct {
	Account *account.Account
	Session *session.Session
}

// Service implements the login and credential-lifecycle flows.
type Service struct {
	accounts AccountStore
	hasher   PasswordHasher
	second   SecondFactor
	throttle Throttle
	sessions SessionManager
	log      *slog.Logger

	// dummyDigest is verified against when the username is unknown, so the
	// caller cannot time the difference between a missing account and a
	// wrong passphrase.
	dummyDigest string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for sanitized failure reports.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New creates the authentication service. It derives the timing-equalization
// digest up front, which costs one KDF invocation.
func New(accounts AccountStore, hasher PasswordHasher, second SecondFactor, thr Throttle, sessions SessionManager, opts ...Option) (*Service, error) {
	if accounts == nil {
		return nil, ErrStoreRequired
	}
	if hasher == nil {
		return nil, ErrHasherRequired
	}
	if second == nil || thr == nil || sessions == nil {
		return nil, ErrDependencyRequired
	}

	s := &Service{
		accounts: accounts,
		hasher:   hasher,
		second:   second,
		throttle: thr,
		sessions: sessions,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	dummy, err := hasher.Hash(context.Background(), randomPassphrase())
	if err != nil {
		return nil, fmt.Errorf("derive timing-equalization digest: %w", err)
	}
	s.dummyDigest = dummy

	return s, nil
}

// Login authenticates an operator. The throttle is consulted before any
// credential work; a ThrottledError passes through unchanged so the caller
// can show the remaining wait. All credential failures return
// ErrAuthenticationFailed.
func (s *Service) Login(ctx context.Context, username, passphrase, code string) (*Principal, error) {
	acc, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			// Burn a verification so unknown usernames take as long as
			// wrong passphrases.
			if _, verr := s.hasher.Verify(ctx, passphrase, s.dummyDigest); verr != nil {
				return nil, verr
			}
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := s.throttle.Check(ctx, acc.ID); err != nil {
		return nil, err
	}

	if err := passhash.CheckLength(passphrase); err != nil {
		// Out-of-policy lengths fail closed without any KDF work; no stored
		// passphrase can have an invalid length.
		return nil, s.fail(ctx, acc.ID, "passphrase length")
	}

	ok, err := s.hasher.Verify(ctx, passphrase, acc.PasswordDigest)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.fail(ctx, acc.ID, "passphrase")
	}

	if err := s.second.Verify(ctx, acc, code); err != nil {
		return nil, s.fail(ctx, acc.ID, "one-time code")
	}

	if err := s.throttle.Success(ctx, acc.ID); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Issue(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	s.log.LogAttrs(ctx, slog.LevelInfo, "login succeeded", logger.AccountID(acc.ID))

	return &Principal{Account: acc, Session: sess}, nil
}

// ChangePassword replaces the account's passphrase and revokes all of its
// sessions.
func (s *Service) ChangePassword(ctx context.Context, accountID int64, newPassphrase string) error {
	if err := passhash.CheckLength(newPassphrase); err != nil {
		return err
	}

	digest, err := s.hasher.Hash(ctx, newPassphrase)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePasswordDigest(ctx, accountID, digest); err != nil {
		return err
	}

	revoked, err := s.sessions.InvalidateAccount(ctx, accountID)
	if err != nil {
		return err
	}
	s.log.LogAttrs(ctx, slog.LevelInfo, "passphrase changed",
		logger.AccountID(accountID),
		slog.Int("sessions_revoked", revoked),
	)

	return nil
}

// ResetTwoFactorSecret replaces the account's one-time-password secret and
// revokes all of its sessions. The new raw secret is returned for rendering
// enrollment material.
func (s *Service) ResetTwoFactorSecret(ctx context.Context, accountID int64, input string, isHOTP bool) ([]byte, error) {
	secret, err := s.second.ResetSecret(ctx, accountID, input, isHOTP)
	if err != nil {
		return nil, err
	}

	revoked, err := s.sessions.InvalidateAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.log.LogAttrs(ctx, slog.LevelInfo, "two-factor secret reset",
		logger.AccountID(accountID),
		slog.Int("sessions_revoked", revoked),
	)

	return secret, nil
}

// fail records a failed attempt and returns the uniform credential error.
// The failed factor is logged, never surfaced to the caller.
func (s *Service) fail(ctx context.Context, accountID int64, factor string) error {
	throttled, err := s.throttle.Failure(ctx, accountID)
	if err != nil {
		return err
	}

	s.log.LogAttrs(ctx, slog.LevelWarn, "login failed",
		logger.AccountID(accountID),
		slog.String("factor", factor),
		slog.Bool("throttled", throttled),
	)

	return ErrAuthenticationFailed
}

// randomPassphrase produces throwaway in-policy input for the
// timing-equalization digest.
func randomPassphrase() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return base64.RawStdEncoding.EncodeToString(buf)
}
