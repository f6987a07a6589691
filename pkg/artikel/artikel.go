// Package artikel detects missing English articles ("a", "an", "the") and
// proposes replacement phrases with character offsets into the input.
//
// A sentence flows through the normalizer, the annotator, the chunk grammar
// and the classifier; the resulting suggestions are then mapped back onto the
// words of the original sentence.
package artikel

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/artikel/internal/logger"
	"github.com/cognicore/artikel/pkg/artikel/annotate"
	"github.com/cognicore/artikel/pkg/artikel/chunk"
	"github.com/cognicore/artikel/pkg/artikel/classify"
	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/normalize"
	"github.com/cognicore/artikel/pkg/artikel/pos"
	"github.com/cognicore/artikel/pkg/artikel/segment"
	"github.com/cognicore/artikel/pkg/artikel/store"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

// Checker is the article detection engine facade.
type Checker struct {
	normalizer *normalize.Normalizer
	annotator  annotate.Annotator
	grammar    chunk.Grammar
	classifier *classify.Classifier
	segmenter  segment.Segmenter
	store      store.Store
	workers    int
	log        *logrus.Logger

	// serializes cache read-modify-write across concurrent batches
	cacheMu sync.Mutex
}

// Options configures a Checker. Rules are applied to every annotation before
// chunking. Store is optional; without it nothing is cached.
type Options struct {
	Normalizer *normalize.Normalizer
	Annotator  annotate.Annotator
	Rules      []annotate.Rule
	Grammar    chunk.Grammar
	Classifier *classify.Classifier
	Segmenter  segment.Segmenter
	Store      store.Store
	Workers    int
	Logger     *logrus.Logger
}

// New creates a Checker. Normalizer, Annotator and Classifier are required;
// the other options have defaults.
func New(opts Options) (*Checker, error) {
	switch {
	case opts.Normalizer == nil:
		return nil, fmt.Errorf("%w: normalizer is required", internalerr.ErrInvalidConfig)
	case opts.Annotator == nil:
		return nil, fmt.Errorf("%w: annotator is required", internalerr.ErrInvalidConfig)
	case opts.Classifier == nil:
		return nil, fmt.Errorf("%w: classifier is required", internalerr.ErrInvalidConfig)
	}

	c := &Checker{
		normalizer: opts.Normalizer,
		annotator:  annotate.WithRules(opts.Annotator, opts.Rules),
		grammar:    opts.Grammar,
		classifier: opts.Classifier,
		segmenter:  opts.Segmenter,
		store:      opts.Store,
		workers:    opts.Workers,
		log:        opts.Logger,
	}
	if len(c.grammar) == 0 {
		c.grammar = chunk.DefaultGrammar
	}
	if c.segmenter == nil {
		c.segmenter = segment.Prose{}
	}
	if c.workers <= 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	if c.log == nil {
		c.log = logger.GetLogger()
	}
	return c, nil
}

// Close releases the cache store, flushing it first.
func (c *Checker) Close() error {
	if c.store == nil {
		return nil
	}
	return errors.Join(c.store.Flush(context.Background()), c.store.Close())
}

// ProcessSentence checks one sentence. The empty sentence yields the
// placeholder result; an annotation failure yields no result at all.
func (c *Checker) ProcessSentence(ctx context.Context, sentence string) (suggest.SentenceResult, error) {
	if sentence == "" {
		return suggest.Empty(), nil
	}
	if err := ctx.Err(); err != nil {
		return suggest.SentenceResult{}, err
	}

	norm := c.normalizer.Normalize(sentence)
	if len(norm.Tokens) == 0 {
		return suggest.SentenceResult{Text: sentence, Suggestions: []suggest.Offset{}}, nil
	}

	tokens, err := c.annotator.Annotate(ctx, norm.Tokens)
	if err != nil {
		return suggest.SentenceResult{}, err
	}

	var asm suggest.Assembler
	for _, span := range c.grammar.Chunk(pos.Tags(tokens)) {
		group := span.Tokens(tokens)
		asm.Add(suggest.Part{
			Words:       pos.Words(group),
			Suggestions: c.classifier.Classify(span.Label, group),
		})
	}

	unwound := suggest.Unwind(asm.Assembly(), norm.Edits)
	res := suggest.Map(sentence, unwound.Words, unwound.Suggestions)

	c.log.WithFields(logrus.Fields{
		"hash":        store.Hash(sentence),
		"suggestions": len(res.Suggestions),
	}).Debug("sentence checked")

	return res, nil
}

// ProcessText segments text line by line and checks every sentence.
// See ProcessBatch for the result and error contract.
func (c *Checker) ProcessText(ctx context.Context, text string) ([]suggest.SentenceResult, error) {
	sentences, err := segment.Lines(text, c.segmenter)
	if err != nil {
		return nil, fmt.Errorf("segment text: %w", err)
	}
	return c.ProcessBatch(ctx, sentences)
}
