// Package segment splits text into sentences while keeping its line
// structure: every blank line, and the boundary after every non-blank line,
// shows up as an empty entry.
package segment

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Segmenter splits one line of text into sentences.
type Segmenter interface {
	Sentences(line string) ([]string, error)
}

// Func adapts a function to the Segmenter interface.
type Func func(line string) ([]string, error)

// Sentences calls f.
func (f Func) Sentences(line string) ([]string, error) { return f(line) }

// Lines splits text on "\n" and each non-empty line with seg.
//
// An empty line gives "", a non-empty line gives its sentences followed by
// "", and the final trailing "" is dropped. Empty text gives nil.
func Lines(text string, seg Segmenter) ([]string, error) {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			out = append(out, "")
			continue
		}
		sentences, err := seg.Sentences(line)
		if err != nil {
			return nil, err
		}
		out = append(out, sentences...)
		out = append(out, "")
	}
	if len(out) > 0 {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Prose segments with the punkt-style sentence boundary detector of
// github.com/jdkato/prose.
type Prose struct{}

// Sentences implements Segmenter.
func (Prose) Sentences(line string) ([]string, error) {
	doc, err := prose.NewDocument(line,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, s := range doc.Sentences() {
		if text := strings.TrimSpace(s.Text); text != "" {
			out = append(out, text)
		}
	}
	return out, nil
}

// Simple splits after '.', '!' or '?' when followed by whitespace. It does
// not know about abbreviations and is meant for tests and tooling.
type Simple struct{}

// Sentences implements Segmenter.
func (Simple) Sentences(line string) ([]string, error) {
	var out []string
	runes := []rune(line)
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			out = append(out, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out, nil
}
