// Package pos defines the part-of-speech vocabulary shared by the annotators,
// the chunker and the classifier.
//
// Tags follow the Penn Treebank set with one addition: the literal word "it"
// carries the custom tag IT so the chunk grammar can tell it apart from other
// personal pronouns.
package pos

import "strings"

// Tag is a part-of-speech tag.
type Tag string

// Tags the chunk grammar and the classifier care about. Any other Penn tag
// (VB, RB, PRP, ...) may appear in a token stream and is treated as filler.
const (
	DT   Tag = "DT"   // determiner
	EX   Tag = "EX"   // existential there
	IT   Tag = "IT"   // literal "it"
	VBZ  Tag = "VBZ"  // verb, 3rd person singular present
	VBD  Tag = "VBD"  // verb, past tense
	NN   Tag = "NN"   // noun, singular or mass
	NNS  Tag = "NNS"  // noun, plural
	NNP  Tag = "NNP"  // proper noun, singular
	NNPS Tag = "NNPS" // proper noun, plural
	JJ   Tag = "JJ"   // adjective
	JJR  Tag = "JJR"  // adjective, comparative
	JJS  Tag = "JJS"  // adjective, superlative
	CD   Tag = "CD"   // cardinal number
	PRPS Tag = "PRP$" // possessive pronoun
	IN   Tag = "IN"   // preposition or subordinating conjunction
	SYM  Tag = "SYM"  // symbol or empty token
)

// IsNoun reports whether the tag belongs to the noun family (NN, NNS, NNP, NNPS).
func (t Tag) IsNoun() bool {
	return strings.HasPrefix(string(t), "NN")
}

// Token is one annotated word of a normalized sentence.
type Token struct {
	Word   string `json:"word"`
	Tag    Tag    `json:"tag"`
	Entity bool   `json:"entity,omitempty"`
}

// Words returns the surface forms of the tokens.
func Words(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Word
	}
	return out
}

// Tags returns the tags of the tokens, parallel to Words.
func Tags(tokens []Token) []Tag {
	out := make([]Tag, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Tag
	}
	return out
}
