// Package annotate assigns part-of-speech tags and named-entity flags to a
// normalized token sequence.
//
// Tagging itself is delegated to an Annotator (a lexicon tagger, the prose
// statistical tagger or a remote service). Whatever the backend, its output
// goes through Finalize, which applies the tag-fix rules and gives the word
// "it" its own IT tag.
package annotate

import (
	"context"
	"fmt"
	"strings"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/pos"
)

// Annotator tags a token sequence. The result must have the same length and
// order as words. Implementations must be safe for concurrent use.
type Annotator interface {
	Annotate(ctx context.Context, words []string) ([]pos.Token, error)
}

// Func adapts a function to the Annotator interface.
type Func func(ctx context.Context, words []string) ([]pos.Token, error)

// Annotate calls f.
func (f Func) Annotate(ctx context.Context, words []string) ([]pos.Token, error) {
	return f(ctx, words)
}

// Rule corrects a tag the tagger is known to get wrong for a word,
// e.g. "actor" tagged JJ becomes NN.
type Rule struct {
	Word string
	From pos.Tag
	To   pos.Tag
}

// Finalize applies tag-fix rules and the IT tag to a copy of tokens.
// Rule words match case-insensitively; rule tags match exactly.
func Finalize(tokens []pos.Token, rules []Rule) []pos.Token {
	out := make([]pos.Token, len(tokens))
	copy(out, tokens)

	for i := range out {
		lower := strings.ToLower(out[i].Word)
		for _, r := range rules {
			if strings.ToLower(r.Word) == lower && out[i].Tag == r.From {
				out[i].Tag = r.To
			}
		}
		if lower == "it" {
			out[i].Tag = pos.IT
		}
	}

	return out
}

type finalizing struct {
	inner Annotator
	rules []Rule
}

// WithRules wraps a so that every result is checked for length and passed
// through Finalize.
func WithRules(a Annotator, rules []Rule) Annotator {
	return &finalizing{inner: a, rules: append([]Rule(nil), rules...)}
}

func (f *finalizing) Annotate(ctx context.Context, words []string) ([]pos.Token, error) {
	tokens, err := f.inner.Annotate(ctx, words)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internalerr.ErrAnnotation, err)
	}
	if len(tokens) != len(words) {
		return nil, fmt.Errorf("%w: got %d tokens for %d words", internalerr.ErrAnnotation, len(tokens), len(words))
	}
	return Finalize(tokens, f.rules), nil
}
