package suggest

import "unicode/utf8"

// CharRange converts the token range of s into character offsets within the
// words joined by single spaces. Characters are counted as runes. The end is
// exclusive: it points one past the last character of the last token.
func CharRange(words []string, s Suggestion) (start, end int) {
	for _, w := range words[:s.Start] {
		start += utf8.RuneCountInString(w)
	}
	start += s.Start

	end = start
	for _, w := range words[s.Start:s.End] {
		end += utf8.RuneCountInString(w)
	}
	end += s.End - s.Start - 1

	return start, end
}

// Map builds the sentence result for text from unwound words and suggestions.
// Suggestions whose range does not fit the word list are dropped.
func Map(text string, words []string, list []Suggestion) SentenceResult {
	res := SentenceResult{Text: text, Suggestions: make([]Offset, 0, len(list))}

	for _, s := range list {
		if s.Start < 0 || s.Start >= s.End || s.End > len(words) {
			continue
		}
		start, end := CharRange(words, s)
		res.Suggestions = append(res.Suggestions, Offset{
			Start:        start,
			End:          end,
			Replacements: append([]string(nil), s.Replacements...),
			Cause:        s.Cause,
		})
	}

	return res
}
