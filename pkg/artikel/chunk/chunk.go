// Package chunk partitions a tagged sentence into labeled spans using a small
// chunk grammar over part-of-speech tags.
//
// The grammar is an ordered list of rules. At every position the rules are
// tried in order; the first rule that matches consumes its longest match.
// When no rule matches, the token becomes a single-token Other span. The
// resulting spans cover the sentence exactly once, in order.
package chunk

import "github.com/cognicore/artikel/pkg/artikel/pos"

// Label names the kind of a span.
type Label string

const (
	ExistentialCopula      Label = "EXIND"  // "it is", "there was" + noun group
	PhrasalVerb            Label = "VBPART" // copula + noun + preposition
	PrepositionalNounGroup Label = "NPP"    // determiner-led group with an inner preposition
	NounGroup              Label = "NP"
	Other                  Label = "OTHER"
)

// Span is a half-open range [Start, End) of token indices.
type Span struct {
	Label Label
	Start int
	End   int
}

// Len returns the number of tokens in the span.
func (s Span) Len() int { return s.End - s.Start }

// Tokens returns the slice of tokens covered by the span.
func (s Span) Tokens(tokens []pos.Token) []pos.Token {
	return tokens[s.Start:s.End]
}

// Rule binds a label to a tag pattern.
type Rule struct {
	Label   Label
	Pattern Pattern
}

// Grammar is an ordered rule list.
type Grammar []Rule

var (
	determinerLike = []pos.Tag{pos.DT, pos.EX, pos.IT}
	copula         = []pos.Tag{pos.VBZ, pos.VBD}
	adjectives     = []pos.Tag{pos.JJS, pos.JJ, pos.JJR}
	nouns          = []pos.Tag{pos.NN, pos.NNS}
	possessive     = []pos.Tag{pos.DT, pos.PRPS}
)

// DefaultGrammar is the article-detection grammar:
//
//	EXIND:  (DT|EX|IT)+ (VBZ|VBD)+ DT? JJ* NN+
//	VBPART: (VBZ|VBD) NN+ IN+
//	NPP:    DT+ NN? IN? CD? (DT|PRP$)? (JJS|JJ|JJR)* (NN|NNS)+
//	NP:     CD? (DT|PRP$)? (JJS|JJ|JJR)* (NN|NNS)+
var DefaultGrammar = Grammar{
	{ExistentialCopula, Pattern{
		Plus(determinerLike...),
		Plus(copula...),
		Opt(pos.DT),
		Star(pos.JJ),
		Plus(pos.NN),
	}},
	{PhrasalVerb, Pattern{
		One(copula...),
		Plus(pos.NN),
		Plus(pos.IN),
	}},
	{PrepositionalNounGroup, Pattern{
		Plus(pos.DT),
		Opt(pos.NN),
		Opt(pos.IN),
		Opt(pos.CD),
		Opt(possessive...),
		Star(adjectives...),
		Plus(nouns...),
	}},
	{NounGroup, Pattern{
		Opt(pos.CD),
		Opt(possessive...),
		Star(adjectives...),
		Plus(nouns...),
	}},
}

// Chunk splits a tag sequence into spans.
func (g Grammar) Chunk(tags []pos.Tag) []Span {
	var spans []Span
	i := 0

	for i < len(tags) {
		span := Span{Label: Other, Start: i, End: i + 1}
		for _, rule := range g {
			if end := rule.Pattern.Longest(tags, i); end > i {
				span = Span{Label: rule.Label, Start: i, End: end}
				break
			}
		}
		spans = append(spans, span)
		i = span.End
	}

	return spans
}

// Chunk applies DefaultGrammar to annotated tokens.
func Chunk(tokens []pos.Token) []Span {
	return DefaultGrammar.Chunk(pos.Tags(tokens))
}
