package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/artikel/pkg/artikel/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	buckets map[string]store.Bucket
}

var _ store.Store = (*Store)(nil)

// New creates a new in-memory store.
func New() *Store {
	return &Store{buckets: make(map[string]store.Bucket)}
}

// Get implements store.Store.
func (s *Store) Get(ctx context.Context, hash string) (store.Bucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return store.CloneBucket(s.buckets[hash]), nil
}

// Put implements store.Store.
func (s *Store) Put(ctx context.Context, hash string, b store.Bucket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buckets[hash] = store.CloneBucket(b)
	return nil
}

// Len returns the number of cached sentences.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// Flush implements store.Store.
func (s *Store) Flush(ctx context.Context) error { return nil }

// Close implements store.Store.
func (s *Store) Close() error { return nil }
