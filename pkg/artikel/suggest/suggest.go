// Package suggest holds article suggestions and the bookkeeping that carries
// them from span-local token indices to character offsets in the original
// sentence.
//
// Suggestions are values. Every transformation (shift, unwind, mapping)
// returns a new slice and leaves its input untouched.
package suggest

// Suggestion proposes replacements for the token range [Start, End).
type Suggestion struct {
	Start        int
	End          int
	Replacements []string
	Cause        string
}

// Shift moves the suggestion by n tokens.
func (s Suggestion) Shift(n int) Suggestion {
	s.Start += n
	s.End += n
	return s
}

// Shift returns a copy of list with every suggestion moved by n tokens.
func Shift(list []Suggestion, n int) []Suggestion {
	if len(list) == 0 {
		return nil
	}
	out := make([]Suggestion, len(list))
	for i, s := range list {
		out[i] = s.Shift(n)
	}
	return out
}

// Offset is a suggestion expressed in characters of the original sentence.
// End is exclusive.
type Offset struct {
	Start        int      `json:"start"`
	End          int      `json:"end"`
	Replacements []string `json:"replacements"`
	Cause        string   `json:"cause"`
}

// SentenceResult is the outcome for one sentence.
type SentenceResult struct {
	Text        string   `json:"text"`
	Suggestions []Offset `json:"suggestions"`
}

// EmptyText is the text reported for an empty sentence or a blank line.
const EmptyText = "\n"

// Empty returns the placeholder result for an empty sentence.
func Empty() SentenceResult {
	return SentenceResult{Text: EmptyText, Suggestions: []Offset{}}
}
