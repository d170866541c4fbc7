package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

// PostgresStore persists accounts in PostgreSQL via a pgx pool.
// Counter and throttle mutations are single statements, so they are atomic
// without explicit transactions.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Create persists a new account, assigning its ID.
func (s *PostgresStore) Create(ctx context.Context, acc *Account) error {
	if err := ValidateUsername(acc.Username); err != nil {
		return err
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO accounts (username, password_digest, otp_secret, is_hotp, hotp_counter, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		acc.Username, acc.PasswordDigest, acc.OTPSecret, acc.IsHOTP, acc.HOTPCounter, acc.IsAdmin,
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrUsernameTaken
		}
		return err
	}

	return nil
}

// GetByID returns the account with the given id.
func (s *PostgresStore) GetByID(ctx context.Context, id int64) (*Account, error) {
	return s.get(ctx, `WHERE id = $1`, id)
}

// GetByUsername returns the account with the given username (case-sensitive).
func (s *PostgresStore) GetByUsername(ctx context.Context, username string) (*Account, error) {
	return s.get(ctx, `WHERE username = $1`, username)
}

func (s *PostgresStore) get(ctx context.Context, where string, arg any) (*Account, error) {
	var (
		acc  Account
		last *time.Time
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, username, password_digest, otp_secret, is_hotp, hotp_counter,
		       is_admin, failed_attempt_count, last_failed_attempt_at, created_at
		FROM accounts `+where,
		arg,
	).Scan(&acc.ID, &acc.Username, &acc.PasswordDigest, &acc.OTPSecret, &acc.IsHOTP,
		&acc.HOTPCounter, &acc.IsAdmin, &acc.FailedAttemptCount, &last, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if last != nil {
		acc.LastFailedAttemptAt = *last
	}

	return &acc, nil
}

// UpdatePasswordDigest replaces the stored passphrase digest.
func (s *PostgresStore) UpdatePasswordDigest(ctx context.Context, id int64, digest string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE accounts SET password_digest = $2 WHERE id = $1`, id, digest)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateOTPSecret atomically replaces the one-time-password secret and
// variant, resetting the HOTP counter to its initial value.
func (s *PostgresStore) UpdateOTPSecret(ctx context.Context, id int64, secret []byte, isHOTP bool) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE accounts SET otp_secret = $2, is_hotp = $3, hotp_counter = 0 WHERE id = $1`,
		id, secret, isHOTP)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AdvanceHOTPCounter moves the counter forward to the given value. The WHERE
// clause makes the advance a compare-and-swap: a concurrent verification that
// already claimed the code leaves zero rows affected.
func (s *PostgresStore) AdvanceHOTPCounter(ctx context.Context, id int64, to uint64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE accounts SET hotp_counter = $2 WHERE id = $1 AND hotp_counter < $2`,
		id, int64(to))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing account from a stale advance.
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrCounterConflict
	}
	return nil
}

// RecordFailure increments the failed-attempt counter in a single statement
// so concurrent attempts cannot lose increments, returning the new count.
func (s *PostgresStore) RecordFailure(ctx context.Context, id int64, at time.Time) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `
		UPDATE accounts
		SET failed_attempt_count = failed_attempt_count + 1,
		    last_failed_attempt_at = $2
		WHERE id = $1
		RETURNING failed_attempt_count`,
		id, at,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return count, nil
}

// State returns the current failed-attempt count and last failure time.
func (s *PostgresStore) State(ctx context.Context, id int64) (int, time.Time, error) {
	var (
		count int
		last  *time.Time
	)
	err := s.pool.QueryRow(ctx,
		`SELECT failed_attempt_count, last_failed_attempt_at FROM accounts WHERE id = $1`,
		id,
	).Scan(&count, &last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, time.Time{}, ErrNotFound
		}
		return 0, time.Time{}, err
	}
	if last == nil {
		return count, time.Time{}, nil
	}
	return count, *last, nil
}

// Reset zeroes the failed-attempt counter after a successful authentication.
func (s *PostgresStore) Reset(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE accounts SET failed_attempt_count = 0, last_failed_attempt_at = NULL WHERE id = $1`,
		id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
