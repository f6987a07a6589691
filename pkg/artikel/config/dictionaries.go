// Package config loads the dictionaries the engine runs on and the
// application settings of the artikel binaries.
package config

import (
	"bytes"
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
)

//go:embed dictionaries/*.yaml
var defaults embed.FS

// Default dictionary file names inside the embedded set.
const (
	ContractionsFile = "dictionaries/contractions.yaml"
	TagRulesFile     = "dictionaries/tag_rules.yaml"
	UncountableFile  = "dictionaries/uncountable.yaml"
)

// TagRule corrects a tag the tagger is known to get wrong for a word.
type TagRule struct {
	Word     string `yaml:"word" json:"word"`
	PosTag   string `yaml:"posTag" json:"posTag"`
	ChangeTo string `yaml:"changeTo" json:"changeTo"`
}

// Uncountable is the uncountable-noun list file.
type Uncountable struct {
	Nouns []string `yaml:"nouns" json:"nouns"`
}

// Dictionaries holds the read-only reference data of the engine.
type Dictionaries struct {
	Contractions map[string]string
	TagRules     []TagRule
	Uncountable  []string
}

// LoadContractions reads a contraction -> expansion map. JSON files are
// accepted as well.
func LoadContractions(path string) (map[string]string, error) {
	data, err := readDictionary(path, ContractionsFile)
	if err != nil {
		return nil, err
	}

	var m map[string]string
	if err := decode(data, &m); err != nil {
		return nil, fmt.Errorf("contractions %s: %w", describe(path, ContractionsFile), err)
	}
	return m, nil
}

// LoadTagRules reads the list of tag-fix rules.
func LoadTagRules(path string) ([]TagRule, error) {
	data, err := readDictionary(path, TagRulesFile)
	if err != nil {
		return nil, err
	}

	var rules []TagRule
	if err := decode(data, &rules); err != nil {
		return nil, fmt.Errorf("tag rules %s: %w", describe(path, TagRulesFile), err)
	}
	for i, r := range rules {
		if r.Word == "" || r.PosTag == "" || r.ChangeTo == "" {
			return nil, fmt.Errorf("%w: tag rule %d is incomplete", internalerr.ErrInvalidConfig, i)
		}
	}
	return rules, nil
}

// LoadUncountable reads the uncountable-noun list.
func LoadUncountable(path string) ([]string, error) {
	data, err := readDictionary(path, UncountableFile)
	if err != nil {
		return nil, err
	}

	var u Uncountable
	if err := decode(data, &u); err != nil {
		return nil, fmt.Errorf("uncountable nouns %s: %w", describe(path, UncountableFile), err)
	}
	return u.Nouns, nil
}

// readDictionary reads path, or the embedded default when path is empty.
func readDictionary(path, fallback string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = defaults.ReadFile(fallback)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", internalerr.ErrInvalidConfig, describe(path, fallback))
	}
	return data, nil
}

func decode(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, err)
	}
	return nil
}

func describe(path, fallback string) string {
	if path == "" {
		return "embedded " + fallback
	}
	return path
}
