// Package normalize rewrites raw sentence words into a token stream the
// annotators can tag reliably, recording every rewrite as a reversible Edit.
package normalize

import "strings"

// Edit records one rewrite of a raw word. Position is the index of the first
// produced token at the time the edit was made; Consumed is the number of
// tokens the rewrite produced (always >= 1).
type Edit struct {
	Position int
	Consumed int
	Original string
}

// Result is a normalized sentence: the token stream plus the edits that
// produced it, in creation order.
type Result struct {
	Tokens []string
	Edits  []Edit
}

// symbols stripped or rewritten before tagging
const symbols = "()/{}.,:;?!"

var apostrophes = strings.NewReplacer(
	"`", "'",
	"’", "'",
	"‘", "'",
	"â€™", "'", // UTF-8 right quote decoded as cp1252
)

var punctuation = strings.NewReplacer(
	"/", "or",
	"{", "and",
	"}", "and",
	"(", "",
	")", "",
	".", "",
	",", "",
	":", "",
	";", "",
	"?", "",
	"!", "",
)

// Normalizer expands contractions and strips punctuation.
// It is safe for concurrent use once constructed.
type Normalizer struct {
	contractions map[string][]string
}

// New creates a normalizer from a contraction map such as "it's" -> "it is".
// Keys are matched after lower-casing and apostrophe unification.
func New(contractions map[string]string) *Normalizer {
	expanded := make(map[string][]string, len(contractions))
	for k, v := range contractions {
		words := strings.Fields(v)
		if len(words) == 0 {
			continue
		}
		expanded[Unify(k)] = words
	}
	return &Normalizer{contractions: expanded}
}

// Unify lower-cases a word and maps apostrophe variants to '.
func Unify(word string) string {
	return apostrophes.Replace(strings.ToLower(word))
}

// Normalize splits a sentence on whitespace and rewrites each word.
func (n *Normalizer) Normalize(sentence string) Result {
	var res Result

	for _, word := range strings.Fields(sentence) {
		unified := Unify(word)

		rewritten := false
		if strings.ContainsAny(unified, symbols) {
			unified = punctuation.Replace(unified)
			rewritten = true
		}

		if expansion, ok := n.contractions[unified]; ok {
			res.Edits = append(res.Edits, Edit{
				Position: len(res.Tokens),
				Consumed: len(expansion),
				Original: word,
			})
			res.Tokens = append(res.Tokens, expansion...)
			continue
		}

		if rewritten {
			res.Edits = append(res.Edits, Edit{
				Position: len(res.Tokens),
				Consumed: 1,
				Original: word,
			})
			res.Tokens = append(res.Tokens, unified)
			continue
		}

		res.Tokens = append(res.Tokens, word)
	}

	return res
}

// Len reports how many contraction entries are loaded.
func (n *Normalizer) Len() int {
	return len(n.contractions)
}
