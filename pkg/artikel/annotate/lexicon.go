package annotate

import (
	"context"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/artikel/pkg/artikel/pos"
)

// Lexicon is a dictionary tagger: closed-class words come from a word -> tag
// table, everything else is guessed from its shape and suffix.
//
// It needs no model and is fully deterministic, which makes it the default
// for tests and offline use. A capitalized word that is not in the table and
// not at the start of the sentence is tagged NNP and flagged as an entity.
type Lexicon struct {
	tags map[string]pos.Tag
}

// NewLexicon creates a lexicon tagger seeded with the built-in closed-class
// table and extended with extra entries (extra wins on conflict).
func NewLexicon(extra map[string]pos.Tag) *Lexicon {
	tags := make(map[string]pos.Tag, len(closedClass)+len(extra))
	for w, t := range closedClass {
		tags[w] = t
	}
	for w, t := range extra {
		tags[strings.ToLower(w)] = t
	}
	return &Lexicon{tags: tags}
}

// LoadLexicon reads additional entries from a YAML file.
//
// Expected format:
//
//	words:
//	  actor: NN
//	  present: JJ
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg struct {
		Words map[string]string `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	extra := make(map[string]pos.Tag, len(cfg.Words))
	for w, t := range cfg.Words {
		extra[w] = pos.Tag(strings.TrimSpace(t))
	}
	return NewLexicon(extra), nil
}

// Len returns the number of table entries.
func (l *Lexicon) Len() int { return len(l.tags) }

// Lookup returns the table tag of a word, if any.
func (l *Lexicon) Lookup(word string) (pos.Tag, bool) {
	t, ok := l.tags[strings.ToLower(word)]
	return t, ok
}

// Annotate implements Annotator.
func (l *Lexicon) Annotate(_ context.Context, words []string) ([]pos.Token, error) {
	out := make([]pos.Token, len(words))
	for i, w := range words {
		out[i] = l.tag(i, w)
	}
	return out, nil
}

func (l *Lexicon) tag(i int, word string) pos.Token {
	tok := pos.Token{Word: word}
	if word == "" {
		tok.Tag = pos.SYM
		return tok
	}
	if t, ok := l.Lookup(word); ok {
		tok.Tag = t
		return tok
	}
	if i > 0 && unicode.IsUpper([]rune(word)[0]) {
		tok.Tag = pos.NNP
		tok.Entity = true
		return tok
	}
	tok.Tag = guess(strings.ToLower(word))
	return tok
}

var adjectiveSuffixes = []string{"ful", "ous", "ive", "able", "ible", "ical", "less", "ish"}

// guess tags an open-class word by shape and suffix.
func guess(w string) pos.Tag {
	switch {
	case isNumber(w):
		return pos.CD
	case strings.HasSuffix(w, "est") && len(w) > 5:
		return pos.JJS
	case strings.HasSuffix(w, "ly") && len(w) > 4:
		return "RB"
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		return "VBG"
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		return pos.VBD
	}
	for _, s := range adjectiveSuffixes {
		if strings.HasSuffix(w, s) && len(w) > len(s)+2 {
			return pos.JJ
		}
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") && len(w) > 3 {
		return pos.NNS
	}
	return pos.NN
}

func isNumber(w string) bool {
	digits := 0
	for _, r := range w {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ',' || r == '.' || r == '-':
		default:
			return false
		}
	}
	return digits > 0
}
