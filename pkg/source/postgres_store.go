package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists sources in PostgreSQL via a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Create persists a new source, assigning its ID.
func (s *PostgresStore) Create(ctx context.Context, src *Source) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO sources (filesystem_id, designation)
		VALUES ($1, $2)
		RETURNING id, version, created_at`,
		src.FilesystemID, src.Designation,
	).Scan(&src.ID, &src.Version, &src.CreatedAt)
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}
	return nil
}

// GetByFilesystemID returns the source with the given filesystem identifier.
func (s *PostgresStore) GetByFilesystemID(ctx context.Context, fsid string) (*Source, error) {
	var src Source
	err := s.pool.QueryRow(ctx, `
		SELECT id, filesystem_id, designation, version, interaction_count,
		       last_updated_at, created_at
		FROM sources WHERE filesystem_id = $1`,
		fsid,
	).Scan(&src.ID, &src.FilesystemID, &src.Designation, &src.Version,
		&src.InteractionCount, &src.LastUpdatedAt, &src.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &src, nil
}

// AddSubmission records a submission and bumps the source's interaction
// state in one transaction.
func (s *PostgresStore) AddSubmission(ctx context.Context, sub Submission) error {
	return s.addRecord(ctx, sub.SourceID, `
		INSERT INTO submissions (source_id, filename, size, downloaded)
		VALUES ($1, $2, $3, $4)`,
		sub.SourceID, sub.Filename, sub.Size, sub.Downloaded)
}

// AddReply records a journalist reply and bumps the source's interaction
// state in one transaction.
func (s *PostgresStore) AddReply(ctx context.Context, rep Reply) error {
	return s.addRecord(ctx, rep.SourceID, `
		INSERT INTO replies (source_id, journalist_id, filename, size)
		VALUES ($1, $2, $3, $4)`,
		rep.SourceID, rep.JournalistID, rep.Filename, rep.Size)
}

func (s *PostgresStore) addRecord(ctx context.Context, sourceID int64, insert string, args ...any) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, insert, args...); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE sources
		SET interaction_count = interaction_count + 1,
		    version = version + 1,
		    last_updated_at = now()
		WHERE id = $1`,
		sourceID)
	if err != nil {
		return fmt.Errorf("bump source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

// PurgeSource removes the source's replies, submissions, and the source row
// in one transaction. A concurrent writer bumping the row between read and
// delete aborts the purge with ErrConcurrentModification. Purging an absent
// source succeeds.
func (s *PostgresStore) PurgeSource(ctx context.Context, fsid string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var (
		id      int64
		version int64
	)
	err = tx.QueryRow(ctx,
		`SELECT id, version FROM sources WHERE filesystem_id = $1`, fsid,
	).Scan(&id, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already purged; commit the empty transaction.
			return tx.Commit(ctx)
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM replies WHERE source_id = $1`, id); err != nil {
		return fmt.Errorf("purge replies: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM submissions WHERE source_id = $1`, id); err != nil {
		return fmt.Errorf("purge submissions: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM sources WHERE id = $1 AND version = $2`, id, version)
	if err != nil {
		return fmt.Errorf("purge source: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConcurrentModification
	}

	return tx.Commit(ctx)
}
