package config

import (
	"fmt"

	"github.com/cognicore/artikel/pkg/artikel/annotate"
	"github.com/cognicore/artikel/pkg/artikel/classify"
	"github.com/cognicore/artikel/pkg/artikel/normalize"
	"github.com/cognicore/artikel/pkg/artikel/pos"
)

// Loader loads the dictionary files. An empty path selects the embedded
// default for that dictionary.
type Loader struct {
	ContractionsPath string
	TagRulesPath     string
	UncountablePath  string
}

// Components holds the engine parts built from the dictionaries.
type Components struct {
	Normalizer *normalize.Normalizer
	Classifier *classify.Classifier
	Rules      []annotate.Rule
}

// Load reads all dictionaries.
func (l *Loader) Load() (*Dictionaries, error) {
	contractions, err := LoadContractions(l.ContractionsPath)
	if err != nil {
		return nil, fmt.Errorf("load contractions: %w", err)
	}

	rules, err := LoadTagRules(l.TagRulesPath)
	if err != nil {
		return nil, fmt.Errorf("load tag rules: %w", err)
	}

	nouns, err := LoadUncountable(l.UncountablePath)
	if err != nil {
		return nil, fmt.Errorf("load uncountable nouns: %w", err)
	}

	return &Dictionaries{
		Contractions: contractions,
		TagRules:     rules,
		Uncountable:  nouns,
	}, nil
}

// Components builds the normalizer, classifier and tag-fix rules.
func (d *Dictionaries) Components() *Components {
	rules := make([]annotate.Rule, len(d.TagRules))
	for i, r := range d.TagRules {
		rules[i] = annotate.Rule{Word: r.Word, From: pos.Tag(r.PosTag), To: pos.Tag(r.ChangeTo)}
	}
	return &Components{
		Normalizer: normalize.New(d.Contractions),
		Classifier: classify.New(d.Uncountable),
		Rules:      rules,
	}
}
