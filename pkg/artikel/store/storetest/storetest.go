// Package storetest provides helpers for testing store.Store implementations.
package storetest

import (
	"context"

	"github.com/cognicore/artikel/pkg/artikel/store"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

// Lookup returns the cached result for text.
func Lookup(ctx context.Context, s store.Store, text string) (suggest.SentenceResult, bool, error) {
	b, err := s.Get(ctx, store.Hash(text))
	if err != nil {
		return suggest.SentenceResult{}, false, err
	}
	r, ok := b.Find(text)
	return r, ok, nil
}

// Add appends r to the bucket of its text unless the text is already cached.
func Add(ctx context.Context, s store.Store, r suggest.SentenceResult) error {
	key := store.Hash(r.Text)
	b, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if _, ok := b.Find(r.Text); ok {
		return nil
	}
	return s.Put(ctx, key, b.With(r))
}
