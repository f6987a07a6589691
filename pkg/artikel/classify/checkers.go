package classify

import (
	"strings"

	"github.com/cognicore/artikel/pkg/artikel/pos"
)

var uniqueAdjectives = map[string]struct{}{
	"same": {}, "main": {}, "whole": {}, "previous": {}, "right": {},
	"next": {}, "left": {}, "last": {}, "only": {}, "wrong": {},
}

var quantityWords = map[string]struct{}{
	"all": {}, "none": {}, "both": {},
}

func hasTag(tags []pos.Tag, want ...pos.Tag) bool {
	for _, t := range tags {
		for _, w := range want {
			if t == w {
				return true
			}
		}
	}
	return false
}

// IsDeterminerPresent reports an article, possessive or cardinal in the group.
func IsDeterminerPresent(tags []pos.Tag) bool {
	return hasTag(tags, pos.DT, pos.PRPS, pos.CD)
}

// IsPlural reports a plural noun in the group.
func IsPlural(tags []pos.Tag) bool {
	return hasTag(tags, pos.NNS, pos.NNPS)
}

// IsSuperlativeAdjective reports a superlative adjective in the group.
func IsSuperlativeAdjective(tags []pos.Tag) bool {
	return hasTag(tags, pos.JJS)
}

// IsNamedEntity reports whether any token of the group is a named entity.
func IsNamedEntity(tokens []pos.Token) bool {
	for _, tok := range tokens {
		if tok.Entity {
			return true
		}
	}
	return false
}

// HeadNoun returns the dictionary form used for the uncountable lookup: the
// first noun of the group, stripped of trailing punctuation and capitalized.
func HeadNoun(tokens []pos.Token) (string, bool) {
	for _, tok := range tokens {
		if !tok.Tag.IsNoun() {
			continue
		}
		word := strings.Map(func(r rune) rune {
			switch r {
			case ',', '|', '!', '.':
				return -1
			}
			return r
		}, tok.Word)
		return Capitalize(word), true
	}
	return "", false
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(word string) string {
	if word == "" {
		return word
	}
	lower := []rune(strings.ToLower(word))
	return strings.ToUpper(string(lower[0])) + string(lower[1:])
}

// HasUniqueAdjective reports whether the first plain adjective of the group
// denotes something unique ("same", "main", "only", ...).
func HasUniqueAdjective(words []string, tags []pos.Tag) bool {
	for i, t := range tags {
		if t == pos.JJ {
			_, ok := uniqueAdjectives[strings.ToLower(words[i])]
			return ok
		}
	}
	return false
}

// IsGroupOf reports collocations such as "a group of", "a herd of".
func IsGroupOf(words []string) bool {
	return len(words) >= 3 && words[0] == "a" && words[2] == "of"
}

// IsQuantityOf reports collocations such as "all of", "none of", "both of".
func IsQuantityOf(words []string) bool {
	if len(words) < 2 {
		return false
	}
	_, ok := quantityWords[strings.ToLower(words[0])]
	return ok && words[1] == "of"
}

// ResolveArticleVowel picks the indefinite article for the word that follows.
//
// The choice is by first letter only, so "university" gets "an".
func ResolveArticleVowel(word string) string {
	if word == "" {
		return "a"
	}
	switch strings.ToLower(word)[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
