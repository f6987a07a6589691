// Package store defines the sentence result cache.
//
// Results are keyed by the lowercase hex MD5 of the sentence text. Several
// sentences may share a hash, so each key holds a bucket of results and a hit
// requires the stored text to equal the sentence exactly.
package store

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"

	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

// ErrCorrupt marks a bucket holding entries that cannot be decoded. Get
// returns it together with the entries that could be read; the next Put
// replaces the whole bucket.
var ErrCorrupt = errors.New("corrupt cache entry")

// Store is a key-value store of result buckets. Implementations make no
// promise about concurrent writers beyond what their backend gives.
type Store interface {
	// Get returns the bucket stored under hash; a missing key is an empty
	// bucket and no error. Undecodable entries are left out and reported
	// with an error wrapping ErrCorrupt.
	Get(ctx context.Context, hash string) (Bucket, error)
	// Put replaces the bucket stored under hash.
	Put(ctx context.Context, hash string, b Bucket) error
	// Flush persists pending writes.
	Flush(ctx context.Context) error
	Close() error
}

// Hash returns the cache key of a sentence.
func Hash(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Bucket is the list of results sharing one hash.
type Bucket []suggest.SentenceResult

// Find returns the entry whose text equals text.
func (b Bucket) Find(text string) (suggest.SentenceResult, bool) {
	for _, r := range b {
		if r.Text == text {
			return Clone(r), true
		}
	}
	return suggest.SentenceResult{}, false
}

// With returns a copy of b with r appended, or b itself when r's text is
// already present.
func (b Bucket) With(r suggest.SentenceResult) Bucket {
	if _, ok := b.Find(r.Text); ok {
		return b
	}
	out := make(Bucket, len(b), len(b)+1)
	copy(out, b)
	return append(out, Clone(r))
}

// Clone deep-copies a result so cached entries cannot be modified by callers.
func Clone(r suggest.SentenceResult) suggest.SentenceResult {
	out := suggest.SentenceResult{Text: r.Text, Suggestions: make([]suggest.Offset, len(r.Suggestions))}
	for i, o := range r.Suggestions {
		o.Replacements = append([]string(nil), o.Replacements...)
		out.Suggestions[i] = o
	}
	return out
}

// CloneBucket deep-copies a bucket.
func CloneBucket(b Bucket) Bucket {
	if b == nil {
		return nil
	}
	out := make(Bucket, len(b))
	for i, r := range b {
		out[i] = Clone(r)
	}
	return out
}
