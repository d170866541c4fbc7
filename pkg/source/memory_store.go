package source

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory source store for tests.
type MemoryStore struct {
	mu          sync.RWMutex
	sources     map[int64]*Source
	byFSID      map[string]int64
	submissions map[int64][]Submission
	replies     map[int64][]Reply
	nextID      int64
}

// NewMemoryStore creates an empty in-memory source store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sources:     make(map[int64]*Source),
		byFSID:      make(map[string]int64),
		submissions: make(map[int64][]Submission),
		replies:     make(map[int64][]Reply),
		nextID:      1,
	}
}

// Create persists a new source, assigning its ID.
func (s *MemoryStore) Create(ctx context.Context, src *Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src.ID = s.nextID
	s.nextID++
	if src.CreatedAt.IsZero() {
		src.CreatedAt = time.Now()
	}

	copied := *src
	s.sources[src.ID] = &copied
	s.byFSID[src.FilesystemID] = src.ID

	return nil
}

// GetByFilesystemID returns the source with the given filesystem identifier.
func (s *MemoryStore) GetByFilesystemID(ctx context.Context, fsid string) (*Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byFSID[fsid]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *s.sources[id]
	return &copied, nil
}

// AddSubmission records a submission for the source.
func (s *MemoryStore) AddSubmission(ctx context.Context, sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.sources[sub.SourceID]
	if !ok {
		return ErrNotFound
	}
	s.submissions[sub.SourceID] = append(s.submissions[sub.SourceID], sub)
	src.InteractionCount++
	src.Version++
	src.LastUpdatedAt = time.Now()
	return nil
}

// AddReply records a journalist reply for the source.
func (s *MemoryStore) AddReply(ctx context.Context, rep Reply) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.sources[rep.SourceID]
	if !ok {
		return ErrNotFound
	}
	s.replies[rep.SourceID] = append(s.replies[rep.SourceID], rep)
	src.InteractionCount++
	src.Version++
	src.LastUpdatedAt = time.Now()
	return nil
}

// Counts returns how many submissions and replies the source holds.
func (s *MemoryStore) Counts(ctx context.Context, fsid string) (submissions, replies int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byFSID[fsid]
	if !ok {
		return 0, 0, ErrNotFound
	}
	return len(s.submissions[id]), len(s.replies[id]), nil
}

// PurgeSource removes the source and all dependent records atomically.
// Purging an absent source succeeds.
func (s *MemoryStore) PurgeSource(ctx context.Context, fsid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byFSID[fsid]
	if !ok {
		return nil
	}

	delete(s.replies, id)
	delete(s.submissions, id)
	delete(s.sources, id)
	delete(s.byFSID, fsid)

	return nil
}
