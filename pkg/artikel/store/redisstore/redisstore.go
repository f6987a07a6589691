// Package redisstore shares the result cache between processes through Redis.
//
// Each bucket is a Redis hash whose fields are the sentence texts and whose
// values are the JSON-encoded suggestions.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/store"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

// DefaultPrefix namespaces cache keys.
const DefaultPrefix = "artikel:"

// Store is a Redis backed store.Store.
type Store struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ store.Store = (*Store)(nil)

type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithTTL expires a bucket ttl after its last write. Zero keeps entries forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// New wraps an existing client.
func New(rdb redis.UniversalClient, opts ...Option) *Store {
	s := &Store{rdb: rdb, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open connects to addr and checks the connection.
func Open(ctx context.Context, addr string, opts ...Option) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: redis %s: %w", internalerr.ErrStoreUnavailable, addr, err)
	}
	return New(rdb, opts...), nil
}

// Get implements store.Store. Entries come back sorted by text since a
// Redis hash has no field order. Fields that cannot be decoded are skipped
// and reported with store.ErrCorrupt.
func (s *Store) Get(ctx context.Context, hash string) (store.Bucket, error) {
	fields, err := s.rdb.HGetAll(ctx, s.prefix+hash).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}

	texts := make([]string, 0, len(fields))
	for text := range fields {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	bucket := make(store.Bucket, 0, len(texts))
	bad := 0
	for _, text := range texts {
		r := suggest.SentenceResult{Text: text}
		if err := json.Unmarshal([]byte(fields[text]), &r.Suggestions); err != nil {
			bad++
			continue
		}
		bucket = append(bucket, r)
	}
	if bad > 0 {
		return bucket, fmt.Errorf("%w: %d fields under %s", store.ErrCorrupt, bad, hash)
	}
	return bucket, nil
}

// Put replaces the hash of the bucket in one MULTI/EXEC transaction. An
// empty bucket deletes the key.
func (s *Store) Put(ctx context.Context, hash string, b store.Bucket) error {
	values := make([]interface{}, 0, 2*len(b))
	for _, r := range b {
		suggestions := r.Suggestions
		if suggestions == nil {
			suggestions = []suggest.Offset{}
		}
		raw, err := json.Marshal(suggestions)
		if err != nil {
			return err
		}
		values = append(values, r.Text, string(raw))
	}

	key := s.prefix + hash
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) == 0 {
			return nil
		}
		pipe.HSet(ctx, key, values...)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	return nil
}

// Flush is a no-op: writes go straight to Redis.
func (s *Store) Flush(ctx context.Context) error { return nil }

// Close closes the client.
func (s *Store) Close() error {
	return s.rdb.Close()
}
