package artikel

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sort"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/artikel/pkg/artikel/store"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

// SentenceError reports a sentence of a batch that could not be checked.
type SentenceError struct {
	Index int
	Text  string
	Err   error
}

func (e *SentenceError) Error() string {
	return fmt.Sprintf("sentence %d %q: %v", e.Index, e.Text, e.Err)
}

func (e *SentenceError) Unwrap() error { return e.Err }

// FailedSentences extracts the *SentenceError values joined into err.
func FailedSentences(err error) []*SentenceError {
	if err == nil {
		return nil
	}
	var out []*SentenceError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, FailedSentences(e)...)
		}
		return out
	}
	var se *SentenceError
	if errors.As(err, &se) {
		out = append(out, se)
	}
	return out
}

// ProcessBatch checks independent sentences on a bounded worker pool and
// returns the results in input order.
//
// Failed sentences are left out of the result; the returned error then joins
// one *SentenceError per failure. With a store configured, cached results are
// read before any work starts and new results are written back at the end.
// Cache failures are logged and never fail the batch.
func (c *Checker) ProcessBatch(ctx context.Context, sentences []string) ([]suggest.SentenceResult, error) {
	batchID := ulid.MustNew(ulid.Now(), rand.Reader).String()
	log := c.log.WithField("batch", batchID)

	results := make([]suggest.SentenceResult, len(sentences))
	errs := make([]error, len(sentences))
	cached := make([]bool, len(sentences))

	hits := c.readCache(ctx, log, sentences, results, cached)

	// Identical sentences are computed once.
	first := make(map[string]int, len(sentences))
	g := new(errgroup.Group)
	g.SetLimit(c.workers)
	for i, s := range sentences {
		if cached[i] {
			continue
		}
		if _, dup := first[s]; dup {
			continue
		}
		first[s] = i

		g.Go(func() error {
			res, err := c.ProcessSentence(ctx, s)
			if err != nil {
				log.WithError(err).WithField("index", i).Error("sentence failed")
				errs[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	for i, s := range sentences {
		if j, ok := first[s]; ok && j != i && !cached[i] {
			results[i], errs[i] = results[j], errs[j]
		}
	}

	c.writeCache(ctx, log, results, errs, first)

	out := make([]suggest.SentenceResult, 0, len(sentences))
	var failed []error
	for i, s := range sentences {
		if errs[i] != nil {
			failed = append(failed, &SentenceError{Index: i, Text: s, Err: errs[i]})
			continue
		}
		out = append(out, results[i])
	}

	log.WithFields(logrus.Fields{
		"sentences":  len(sentences),
		"cache_hits": hits,
		"failed":     len(failed),
	}).Info("batch checked")

	return out, errors.Join(failed...)
}

// readCache fills results from the store. Blank sentences are never cached.
func (c *Checker) readCache(ctx context.Context, log *logrus.Entry, sentences []string, results []suggest.SentenceResult, cached []bool) int {
	if c.store == nil {
		return 0
	}

	buckets := make(map[string]store.Bucket)
	hits := 0
	for i, s := range sentences {
		if s == "" {
			continue
		}
		key := store.Hash(s)
		b, ok := buckets[key]
		if !ok {
			var err error
			b, err = c.store.Get(ctx, key)
			switch {
			case errors.Is(err, store.ErrCorrupt):
				log.WithError(err).Warn("skipping corrupt result cache entries")
			case err != nil:
				log.WithError(err).Warn("result cache read failed, continuing uncached")
				return hits
			}
			buckets[key] = b
		}
		if r, ok := b.Find(s); ok {
			results[i] = r
			cached[i] = true
			hits++
		}
	}
	return hits
}

// writeCache appends freshly computed results to their buckets and flushes.
// A bucket with corrupt entries is replaced by its readable entries plus the
// fresh results.
func (c *Checker) writeCache(ctx context.Context, log *logrus.Entry, results []suggest.SentenceResult, errs []error, computed map[string]int) {
	if c.store == nil || len(computed) == 0 {
		return
	}

	fresh := make(map[string][]suggest.SentenceResult)
	for s, i := range computed {
		if s == "" || errs[i] != nil {
			continue
		}
		key := store.Hash(s)
		fresh[key] = append(fresh[key], results[i])
	}
	if len(fresh) == 0 {
		return
	}

	keys := make([]string, 0, len(fresh))
	for k := range fresh {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	for _, key := range keys {
		b, err := c.store.Get(ctx, key)
		switch {
		case errors.Is(err, store.ErrCorrupt):
			log.WithError(err).Warn("rewriting corrupt result cache entries")
		case err != nil:
			log.WithError(err).Warn("result cache read failed, results not cached")
			return
		}
		for _, r := range fresh[key] {
			b = b.With(r)
		}
		if err := c.store.Put(ctx, key, b); err != nil {
			log.WithError(err).Warn("result cache write failed")
			return
		}
	}
	if err := c.store.Flush(ctx); err != nil {
		log.WithError(err).Warn("result cache flush failed")
	}
}
