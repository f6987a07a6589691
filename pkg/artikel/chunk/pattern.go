package chunk

import "github.com/cognicore/artikel/pkg/artikel/pos"

// unbounded marks an element without an upper repetition limit.
const unbounded = -1

// Element matches between Min and Max consecutive tokens whose tag is in Tags.
type Element struct {
	Tags []pos.Tag
	Min  int
	Max  int
}

func (e Element) accepts(t pos.Tag) bool {
	for _, tag := range e.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// One matches exactly one token.
func One(tags ...pos.Tag) Element { return Element{Tags: tags, Min: 1, Max: 1} }

// Opt matches zero or one token.
func Opt(tags ...pos.Tag) Element { return Element{Tags: tags, Min: 0, Max: 1} }

// Star matches zero or more tokens.
func Star(tags ...pos.Tag) Element { return Element{Tags: tags, Min: 0, Max: unbounded} }

// Plus matches one or more tokens.
func Plus(tags ...pos.Tag) Element { return Element{Tags: tags, Min: 1, Max: unbounded} }

// Pattern is a sequence of elements matched left to right.
type Pattern []Element

// Longest returns the end index of the longest match of p starting at start,
// or -1 when p does not match there. The match is computed by tracking the
// set of reachable positions after each element, so every split between
// adjacent elements is considered.
func (p Pattern) Longest(tags []pos.Tag, start int) int {
	if start < 0 || start > len(tags) {
		return -1
	}

	reach := make([]bool, len(tags)+1)
	reach[start] = true

	for _, el := range p {
		next := make([]bool, len(tags)+1)
		found := false

		for i, ok := range reach {
			if !ok {
				continue
			}
			j, n := i, 0
			for {
				if n >= el.Min {
					next[j] = true
					found = true
				}
				if el.Max != unbounded && n == el.Max {
					break
				}
				if j >= len(tags) || !el.accepts(tags[j]) {
					break
				}
				j++
				n++
			}
		}

		if !found {
			return -1
		}
		reach = next
	}

	for end := len(reach) - 1; end > start; end-- {
		if reach[end] {
			return end
		}
	}
	return -1
}
