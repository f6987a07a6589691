// Package classify decides, per chunk span, whether an article is missing and
// which one to propose.
package classify

import (
	"strings"

	"github.com/cognicore/artikel/pkg/artikel/chunk"
	"github.com/cognicore/artikel/pkg/artikel/pos"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

// Causes reported with suggestions.
const (
	CauseExistential = "Indefinite article after It is, There is, etc."
	CauseQuantityOf  = "Constructions of type 'All of', 'None of' with definite article"
	CausePlural      = "Definite article because of plural form"
	CauseAdjective   = "Definite article because of adjective"
	CauseMissed      = "Missed article before noun group"
)

const definite = "the"

// Classifier applies the article rules to spans. It only reads its
// uncountable-noun set and is safe for concurrent use.
type Classifier struct {
	uncountable map[string]struct{}
}

// New creates a classifier with a list of capitalized singular uncountable
// nouns ("Money", "Advice", ...).
func New(uncountable []string) *Classifier {
	set := make(map[string]struct{}, len(uncountable))
	for _, n := range uncountable {
		set[Capitalize(strings.TrimSpace(n))] = struct{}{}
	}
	return &Classifier{uncountable: set}
}

// IsUncountable reports whether the group's head noun is uncountable.
func (c *Classifier) IsUncountable(tokens []pos.Token) bool {
	head, ok := HeadNoun(tokens)
	if !ok {
		return false
	}
	_, found := c.uncountable[head]
	return found
}

// Classify returns span-local suggestions for the tokens of one span.
func (c *Classifier) Classify(label chunk.Label, tokens []pos.Token) []suggest.Suggestion {
	words := pos.Words(tokens)
	tags := pos.Tags(tokens)

	switch label {
	case chunk.ExistentialCopula:
		if len(tags) > 2 && tags[2] == pos.DT {
			return nil
		}
		if IsNamedEntity(tokens) {
			return nil
		}
		if len(words) <= 2 {
			return nil
		}
		return insert(2, ResolveArticleVowel(words[2]), words, CauseExistential)

	case chunk.PrepositionalNounGroup:
		if c.IsUncountable(tokens) || IsNamedEntity(tokens) || IsGroupOf(words) {
			return nil
		}
		if IsQuantityOf(words) {
			return insert(2, definite, words, CauseQuantityOf)
		}
		if IsDeterminerPresent(tags) {
			return nil
		}
		return resolve(2, words, tags, false)

	case chunk.NounGroup:
		if c.IsUncountable(tokens) || IsDeterminerPresent(tags) || IsNamedEntity(tokens) {
			return nil
		}
		return resolve(0, words, tags, true)
	}

	// PhrasalVerb and Other never get an article.
	return nil
}

// resolve applies the plural / adjective / vowel rules at position p.
// Superlatives only force "the" in plain noun groups.
func resolve(p int, words []string, tags []pos.Tag, superlative bool) []suggest.Suggestion {
	if IsPlural(tags) {
		return insert(p, definite, words, CausePlural)
	}
	if (superlative && IsSuperlativeAdjective(tags)) || HasUniqueAdjective(words, tags) {
		return insert(p, definite, words, CauseAdjective)
	}

	out := insert(p, ResolveArticleVowel(wordAt(words, p)), words, CauseMissed)
	if len(out) == 1 {
		out[0].Replacements = append(out[0].Replacements, phrase(p, definite, words))
	}
	return out
}

// insert builds a suggestion covering [p, len(words)) whose replacement is
// the article followed by those words.
func insert(p int, article string, words []string, cause string) []suggest.Suggestion {
	if p < 0 || p >= len(words) {
		return nil
	}
	return []suggest.Suggestion{{
		Start:        p,
		End:          len(words),
		Replacements: []string{phrase(p, article, words)},
		Cause:        cause,
	}}
}

func phrase(p int, article string, words []string) string {
	rest := append([]string(nil), words[p:]...)
	if p == 0 {
		rest[0] = strings.ToLower(rest[0])
	}
	return article + " " + strings.Join(rest, " ")
}

func wordAt(words []string, p int) string {
	if p < 0 || p >= len(words) {
		return ""
	}
	return words[p]
}
