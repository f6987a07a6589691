package suggest

import "github.com/cognicore/artikel/pkg/artikel/normalize"

// Unwind restores the original words of a normalized sentence and realigns
// the suggestions with them.
//
// Edits are undone in reverse creation order: each edit's Position was
// recorded against a stream that already contained the expansions of every
// earlier edit, so those must still be in place when it is undone.
func Unwind(a Assembly, edits []normalize.Edit) Assembly {
	words := append([]string(nil), a.Words...)
	suggestions := append([]Suggestion(nil), a.Suggestions...)

	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		words = undo(words, e)
		suggestions = UnwindEach(suggestions, e)
	}

	return Assembly{Words: words, Suggestions: suggestions}
}

// undo replaces the Consumed tokens at Position with the original word.
func undo(words []string, e normalize.Edit) []string {
	if e.Position < 0 || e.Position >= len(words) {
		return words
	}
	end := min(e.Position+e.Consumed, len(words))

	out := make([]string, 0, len(words)-(end-e.Position)+1)
	out = append(out, words[:e.Position]...)
	out = append(out, e.Original)
	out = append(out, words[end:]...)
	return out
}

// Unwind maps s through the reversal of e. Suggestions starting after the
// edit move by 1-Consumed; a start that falls inside the collapsed tokens
// lands on the restored word. A suggestion that starts at or before the edit
// but extends into it keeps its start and has its end pulled in.
func (s Suggestion) Unwind(e normalize.Edit) Suggestion {
	delta := 1 - e.Consumed

	switch {
	case s.Start > e.Position:
		s.Start = max(e.Position, s.Start+delta)
		s.End = max(s.Start+1, s.End+delta)
	case s.End > e.Position:
		s.End = max(e.Position+1, s.End+delta)
	}
	return s
}

// UnwindEach maps every suggestion through the reversal of e.
func UnwindEach(list []Suggestion, e normalize.Edit) []Suggestion {
	if len(list) == 0 {
		return nil
	}
	out := make([]Suggestion, len(list))
	for i, s := range list {
		out[i] = s.Unwind(e)
	}
	return out
}
