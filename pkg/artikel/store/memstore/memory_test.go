package memstore

import (
	"context"
	"testing"

	"github.com/cognicore/artikel/pkg/artikel/store"
	"github.com/cognicore/artikel/pkg/artikel/store/storetest"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, _ := storetest.Lookup(ctx, s, "He is actor."); ok {
		t.Fatal("empty store should miss")
	}

	r := suggest.SentenceResult{
		Text:        "He is actor.",
		Suggestions: []suggest.Offset{{Start: 6, End: 12, Replacements: []string{"an actor", "the actor"}}},
	}
	if err := storetest.Add(ctx, s, r); err != nil {
		t.Fatalf("Add: %v", err)
	}
	r.Suggestions[0].Start = 99

	got, ok, err := storetest.Lookup(ctx, s, "He is actor.")
	if err != nil || !ok {
		t.Fatalf("Lookup = %v, %v", ok, err)
	}
	if got.Suggestions[0].Start != 6 {
		t.Errorf("stored entry was aliased: %+v", got)
	}

	_ = storetest.Add(ctx, s, r)
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStoreBucketsShareHash(t *testing.T) {
	ctx := context.Background()
	s := New()

	// Two different texts forced under one key.
	b := store.Bucket{{Text: "first"}, {Text: "second"}}
	if err := s.Put(ctx, "k", b); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(ctx, "k")
	if r, ok := got.Find("second"); !ok || r.Text != "second" {
		t.Errorf("Find(second) = %+v, %v", r, ok)
	}
	if missing, _ := s.Get(ctx, "other"); len(missing) != 0 {
		t.Errorf("missing key should give an empty bucket, got %+v", missing)
	}
}
