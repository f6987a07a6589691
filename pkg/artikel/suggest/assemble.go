package suggest

// Part is the outcome for one span: its words and span-local suggestions.
type Part struct {
	Words       []string
	Suggestions []Suggestion
}

// Assembly is a sentence-level token list with sentence-level suggestions.
type Assembly struct {
	Words       []string
	Suggestions []Suggestion
}

// Assembler concatenates span parts left to right. Each part's suggestions
// are shifted by the number of words already accumulated.
type Assembler struct {
	words       []string
	suggestions []Suggestion
}

// Add appends a part.
func (a *Assembler) Add(p Part) {
	a.suggestions = append(a.suggestions, Shift(p.Suggestions, len(a.words))...)
	a.words = append(a.words, p.Words...)
}

// Assembly returns a copy of what has been accumulated.
func (a *Assembler) Assembly() Assembly {
	return Assembly{
		Words:       append([]string(nil), a.words...),
		Suggestions: append([]Suggestion(nil), a.suggestions...),
	}
}

// Assemble concatenates parts in order.
func Assemble(parts ...Part) Assembly {
	var a Assembler
	for _, p := range parts {
		a.Add(p)
	}
	return a.Assembly()
}
