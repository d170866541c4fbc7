package twofactor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sealpost/sealpost/pkg/account"
	"github.com/sealpost/sealpost/pkg/hexsecret"
	"github.com/sealpost/sealpost/pkg/logger"
	"github.com/sealpost/sealpost/pkg/otp"
	"github.com/sealpost/sealpost/pkg/qrcode"
)

// AccountStore is the slice of account storage the manager needs. The
// account package's stores satisfy it.
type AccountStore interface {
	GetByID(ctx context.Context, id int64) (*account.Account, error)
	UpdateOTPSecret(ctx context.Context, id int64, secret []byte, isHOTP bool) error
	AdvanceHOTPCounter(ctx context.Context, id int64, to uint64) error
}

// Manager handles second-factor enrollment and verification.
type Manager struct {
	store     AccountStore
	log       *slog.Logger
	issuer    string
	skew      uint
	lookahead uint
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for sanitized failure reports.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// New creates a manager over the given account store.
func New(store AccountStore, cfg Config, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	m := &Manager{
		store:     store,
		log:       slog.Default(),
		issuer:    cfg.Issuer,
		skew:      cfg.TOTPSkew,
		lookahead: cfg.HOTPLookahead,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// ResetSecret replaces the account's one-time-password secret. An empty
// input generates a fresh random secret; a non-empty input is treated as an
// operator-supplied hex string and must validate before anything is
// persisted. On any failure the previous secret remains in effect.
//
// The new raw secret is returned so the caller can render enrollment
// material (provisioning URI, QR code) without re-reading the account.
func (m *Manager) ResetSecret(ctx context.Context, accountID int64, input string, isHOTP bool) ([]byte, error) {
	var (
		secret []byte
		err    error
	)
	if input == "" {
		secret, err = otp.GenerateSecret()
		if err != nil {
			m.logFailure(ctx, "generate secret", accountID, err)
			return nil, ErrUnexpected
		}
	} else {
		secret, err = hexsecret.Decode(input)
		if err != nil {
			// Validation failures are the operator's to fix; pass the
			// specific reason through.
			return nil, err
		}
	}

	if err := m.store.UpdateOTPSecret(ctx, accountID, secret, isHOTP); err != nil {
		// The update is atomic, so the old secret is still in effect.
		m.logFailure(ctx, "persist secret", accountID, err)
		return nil, ErrUnexpected
	}

	return secret, nil
}

// Verify checks a one-time code against the account's current secret. For
// HOTP accounts a match also advances the stored counter past the matched
// value; if a concurrent verification got there first, the code is treated
// as replayed and rejected.
func (m *Manager) Verify(ctx context.Context, acc *account.Account, code string) error {
	if acc.IsHOTP {
		return m.verifyHOTP(ctx, acc, code)
	}

	ok, err := otp.ValidateTOTP(acc.OTPSecret, code, m.now(), m.skew)
	if err != nil || !ok {
		return ErrInvalidCode
	}
	return nil
}

func (m *Manager) verifyHOTP(ctx context.Context, acc *account.Account, code string) error {
	matched, ok, err := otp.ValidateHOTP(acc.OTPSecret, acc.HOTPCounter, code, m.lookahead)
	if err != nil || !ok {
		return ErrInvalidCode
	}

	if err := m.store.AdvanceHOTPCounter(ctx, acc.ID, matched+1); err != nil {
		if errors.Is(err, account.ErrCounterConflict) {
			return ErrInvalidCode
		}
		m.logFailure(ctx, "advance counter", acc.ID, err)
		return ErrUnexpected
	}
	return nil
}

// ProvisioningURI returns the otpauth:// enrollment URI for the account.
func (m *Manager) ProvisioningURI(acc *account.Account) (string, error) {
	return otp.ProvisioningURI(otp.URIParams{
		Secret:      acc.OTPSecret,
		AccountName: acc.Username,
		Issuer:      m.issuer,
		HOTP:        acc.IsHOTP,
		Counter:     acc.HOTPCounter,
	})
}

// EnrollmentQR renders the provisioning URI as a PNG QR code.
func (m *Manager) EnrollmentQR(acc *account.Account, size int) ([]byte, error) {
	uri, err := m.ProvisioningURI(acc)
	if err != nil {
		return nil, err
	}
	return qrcode.Generate(uri, size)
}

// logFailure records an internal error without leaking its message: driver
// errors can echo statement parameters, which here include secret bytes, so
// only the error's type is logged.
func (m *Manager) logFailure(ctx context.Context, op string, accountID int64, err error) {
	m.log.LogAttrs(ctx, slog.LevelError, "two-factor operation failed",
		slog.String("op", op),
		logger.AccountID(accountID),
		logger.ErrorType(err),
	)
}
