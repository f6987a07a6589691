// Package filestore keeps the result cache in a single JSON document.
//
// The document maps hash -> bucket. It is read once when the store is opened
// and rewritten wholesale on Flush, so the file is not safe for concurrent
// writers from different processes.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/store"
)

// Store is a JSON file backed store.Store.
type Store struct {
	path string
	log  *logrus.Logger

	mu      sync.RWMutex
	buckets map[string]store.Bucket
	dirty   bool
}

var _ store.Store = (*Store)(nil)

// Open reads the cache at path. A missing file starts an empty cache;
// unreadable JSON is logged and treated as empty.
func Open(path string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Store{path: path, log: log, buckets: make(map[string]store.Bucket)}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}

	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.buckets); err != nil {
		log.WithError(err).WithField("path", path).Warn("result cache is corrupt, starting empty")
		s.buckets = make(map[string]store.Bucket)
	}
	return s, nil
}

// Get implements store.Store.
func (s *Store) Get(ctx context.Context, hash string) (store.Bucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return store.CloneBucket(s.buckets[hash]), nil
}

// Put implements store.Store. The file is rewritten on Flush.
func (s *Store) Put(ctx context.Context, hash string, b store.Bucket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buckets[hash] = store.CloneBucket(b)
	s.dirty = true
	return nil
}

// Flush rewrites the file if anything changed since the last flush.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(s.buckets)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	s.dirty = false
	return nil
}

// Close flushes pending writes.
func (s *Store) Close() error {
	return s.Flush(context.Background())
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".artikel-cache-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
