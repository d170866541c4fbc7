package designation

import (
	"crypto/rand"
	"math/big"
	"sync"
)

// maxAttempts bounds the retry loop when a validator keeps rejecting
// candidates; the namespace is large enough that hitting it means the
// caller's storage is nearly saturated.
const maxAttempts = 100

var (
	mu sync.Mutex
	// used tracks designations handed out by this process, so two sources
	// created in the same instant cannot share a name even before either
	// reaches storage.
	used = make(map[string]struct{})
)

// Generate returns a fresh "adjective noun" designation. The optional check
// callback accepts or rejects a candidate (returning true accepts); it runs
// outside the package lock, so it may query storage.
func Generate(check func(string) bool) string {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		mu.Lock()
		candidate := pick(adjectives) + " " + pick(nouns)
		if _, taken := used[candidate]; taken {
			mu.Unlock()
			continue
		}
		used[candidate] = struct{}{}
		mu.Unlock()

		if check != nil && !check(candidate) {
			mu.Lock()
			delete(used, candidate)
			mu.Unlock()
			continue
		}

		return candidate
	}

	// Namespace exhausted within this process; hand back a duplicate rather
	// than nothing. Storage-level uniqueness still applies.
	mu.Lock()
	defer mu.Unlock()
	return pick(adjectives) + " " + pick(nouns)
}

// Reset clears the in-process deduplication set, for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	used = make(map[string]struct{})
}

// pick selects a word with crypto/rand; designations must not be guessable
// from prior ones.
func pick(words []string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		// The crypto source failing is unrecoverable for our purposes;
		// returning a fixed word keeps the caller alive and visible in logs.
		return words[0]
	}
	return words[n.Int64()]
}
