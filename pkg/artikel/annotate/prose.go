package annotate

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"

	"github.com/cognicore/artikel/pkg/artikel/pos"
)

// Prose tags with the averaged-perceptron tagger and entity extractor of
// github.com/jdkato/prose.
//
// The prose tokenizer may split one of our words into several pieces
// ("o'clock", "e-mail"); pieces are mapped back to words by character count
// and a word takes the tag of its first piece.
type Prose struct{}

// NewProse creates a prose-backed annotator.
func NewProse() *Prose { return &Prose{} }

// Annotate implements Annotator.
func (p *Prose) Annotate(ctx context.Context, words []string) ([]pos.Token, error) {
	if len(words) == 0 {
		return []pos.Token{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(strings.Join(words, " "), prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}
	return align(words, doc.Tokens()), nil
}

// align folds prose tokens back onto words.
func align(words []string, pieces []prose.Token) []pos.Token {
	out := make([]pos.Token, len(words))
	next := 0
	for i, w := range words {
		out[i] = pos.Token{Word: w, Tag: pos.NN}
		if w == "" {
			out[i].Tag = pos.SYM
			continue
		}

		want := utf8.RuneCountInString(strings.ReplaceAll(w, " ", ""))
		got := 0
		first := true
		for got < want && next < len(pieces) {
			piece := pieces[next]
			next++
			if first {
				out[i].Tag = pos.Tag(piece.Tag)
				first = false
			}
			if i > 0 && piece.Label != "" && piece.Label != "O" {
				out[i].Entity = true
			}
			got += utf8.RuneCountInString(piece.Text)
		}
	}
	return out
}
