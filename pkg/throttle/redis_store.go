package throttle

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps throttle counters in Redis so multiple instances share
// the same view of an account's failure state. Each account maps to a hash
// holding the count and the last failure timestamp; the hash expires on its
// own once the account has been quiet long enough.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the default "throttle:" key prefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.keyPrefix = prefix
	}
}

// WithTTL sets the idle expiry for counter hashes. It should comfortably
// exceed the attempt period; the default of one hour is safe for any
// reasonable configuration.
func WithTTL(ttl time.Duration) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.ttl = ttl
	}
}

// NewRedisStore creates a Redis-backed throttle store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		client:    client,
		keyPrefix: "throttle:",
		ttl:       time.Hour,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) key(accountID int64) string {
	return rs.keyPrefix + strconv.FormatInt(accountID, 10)
}

// RecordFailure increments the failure counter, returning the new count.
// HINCRBY is atomic on the server, so concurrent failures never lose
// increments.
func (rs *RedisStore) RecordFailure(ctx context.Context, accountID int64, at time.Time) (int, error) {
	key := rs.key(accountID)

	pipe := rs.client.TxPipeline()
	incr := pipe.HIncrBy(ctx, key, "count", 1)
	pipe.HSet(ctx, key, "last", at.UnixNano())
	pipe.Expire(ctx, key, rs.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("record failure: %w", err)
	}

	return int(incr.Val()), nil
}

// State returns the current failure count and last failure time. A missing
// key is a clean slate, not an error.
func (rs *RedisStore) State(ctx context.Context, accountID int64) (int, time.Time, error) {
	fields, err := rs.client.HGetAll(ctx, rs.key(accountID)).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("read throttle state: %w", err)
	}
	if len(fields) == 0 {
		return 0, time.Time{}, nil
	}

	count, err := strconv.Atoi(fields["count"])
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("parse throttle count: %w", err)
	}
	nanos, err := strconv.ParseInt(fields["last"], 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("parse throttle timestamp: %w", err)
	}

	return count, time.Unix(0, nanos), nil
}

// Reset clears the failure counter for the account.
func (rs *RedisStore) Reset(ctx context.Context, accountID int64) error {
	if err := rs.client.Del(ctx, rs.key(accountID)).Err(); err != nil {
		return fmt.Errorf("reset throttle state: %w", err)
	}
	return nil
}
