package passhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	// MinPasswordLen matches a diceware-style passphrase minimum.
	MinPasswordLen = 14

	// MaxPasswordLen bounds the cost of a single KDF invocation. Argon2 cost
	// grows with input length, so an unbounded passphrase would let an
	// attacker amplify CPU spend per login attempt.
	MaxPasswordLen = 128

	defaultMemoryKiB   = 64 * 1024
	defaultIterations  = 1
	defaultParallelism = 4
	defaultSaltLen     = 16
	defaultKeyLen      = 32
)

// Hasher produces and verifies Argon2id digests with fixed parameters.
// The zero value is not usable; construct with New.
type Hasher struct {
	memoryKiB   uint32
	iterations  uint32
	parallelism uint8
	saltLen     uint32
	keyLen      uint32

	// referenceDigest is burned on the malformed-digest path of Verify so
	// parse failures cost one full KDF run, same as a wrong passphrase.
	referenceDigest string
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithMemory sets the Argon2id memory cost in KiB.
func WithMemory(kib uint32) Option {
	return func(h *Hasher) {
		if kib > 0 {
			h.memoryKiB = kib
		}
	}
}

// WithIterations sets the Argon2id time cost.
func WithIterations(n uint32) Option {
	return func(h *Hasher) {
		if n > 0 {
			h.iterations = n
		}
	}
}

// WithParallelism sets the Argon2id lane count.
func WithParallelism(p uint8) Option {
	return func(h *Hasher) {
		if p > 0 {
			h.parallelism = p
		}
	}
}

// New creates a Hasher with production-safe defaults.
func New(opts ...Option) *Hasher {
	h := &Hasher{
		memoryKiB:   defaultMemoryKiB,
		iterations:  defaultIterations,
		parallelism: defaultParallelism,
		saltLen:     defaultSaltLen,
		keyLen:      defaultKeyLen,
	}
	for _, opt := range opts {
		opt(h)
	}

	// Any well-formed digest works as the reference; the verification result
	// is discarded on the malformed path.
	ref, err := h.hash("reference passphrase for timing equalization")
	if err != nil {
		// rand.Read failing means the process has no usable entropy source.
		panic(fmt.Errorf("passhash: failed to create reference digest: %w", err))
	}
	h.referenceDigest = ref

	return h
}

// NewFromConfig creates a Hasher from an env-loaded Config.
func NewFromConfig(cfg Config) *Hasher {
	return New(
		WithMemory(cfg.MemoryKiB),
		WithIterations(cfg.Iterations),
		WithParallelism(cfg.Parallelism),
	)
}

// CheckLength reports whether the passphrase satisfies the length policy.
func CheckLength(password string) error {
	if len(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		return ErrInvalidPasswordLength
	}
	return nil
}

// Hash derives a PHC-format Argon2id digest with a fresh random salt.
// It fails with ErrInvalidPasswordLength before any KDF work when the
// passphrase violates the length policy.
func (h *Hasher) Hash(password string) (string, error) {
	if err := CheckLength(password); err != nil {
		return "", err
	}
	return h.hash(password)
}

func (h *Hasher) hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memoryKiB, h.parallelism, h.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memoryKiB,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches digest.
//
// It returns false for out-of-policy lengths without hashing, and false for
// malformed digests after burning a reference KDF run so the caller-visible
// result and timing never reveal which factor was wrong.
func (h *Hasher) Verify(password, digest string) bool {
	if CheckLength(password) != nil {
		return false
	}

	params, salt, want, err := parseDigest(digest)
	if err != nil {
		// Keep timing flat: cost one KDF run against the reference digest.
		refParams, refSalt, _, refErr := parseDigest(h.referenceDigest)
		if refErr == nil {
			argon2.IDKey([]byte(password), refSalt, refParams.iterations, refParams.memoryKiB, refParams.parallelism, uint32(h.keyLen))
		}
		return false
	}

	got := argon2.IDKey([]byte(password), salt, params.iterations, params.memoryKiB, params.parallelism, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1
}

type digestParams struct {
	memoryKiB   uint32
	iterations  uint32
	parallelism uint8
}

// parseDigest splits a PHC-format Argon2id string into its parameters,
// salt, and key.
func parseDigest(digest string) (digestParams, []byte, []byte, error) {
	var params digestParams

	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, ErrInvalidDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.Join(ErrInvalidDigest, err)
	}
	if version != argon2.Version {
		return params, nil, nil, ErrUnsupportedDigestVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&params.memoryKiB, &params.iterations, &params.parallelism); err != nil {
		return params, nil, nil, errors.Join(ErrInvalidDigest, err)
	}
	if params.memoryKiB == 0 || params.iterations == 0 || params.parallelism == 0 {
		return params, nil, nil, ErrInvalidDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, errors.Join(ErrInvalidDigest, err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, ErrInvalidDigest
	}

	return params, salt, key, nil
}
