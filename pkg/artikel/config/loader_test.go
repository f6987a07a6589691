package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/pos"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderDefaults(t *testing.T) {
	loader := Loader{}

	dict, err := loader.Load()
	if err != nil {
		t.Fatalf("Embedded dictionaries should load: %v", err)
	}

	if dict.Contractions["it's"] != "it is" {
		t.Errorf("it's should expand to it is, got %q", dict.Contractions["it's"])
	}
	if len(dict.TagRules) == 0 {
		t.Error("Should have default tag rules")
	}
	if len(dict.Uncountable) == 0 {
		t.Error("Should have default uncountable nouns")
	}

	comp := dict.Components()
	if comp.Normalizer == nil || comp.Classifier == nil {
		t.Fatal("Components should be built")
	}
	if comp.Normalizer.Len() != len(dict.Contractions) {
		t.Errorf("Normalizer has %d contractions, want %d", comp.Normalizer.Len(), len(dict.Contractions))
	}
	if !comp.Classifier.IsUncountable([]pos.Token{{Word: "money", Tag: pos.NN}}) {
		t.Error("money should be uncountable")
	}
}

func TestLoaderOverrides(t *testing.T) {
	loader := Loader{
		ContractionsPath: writeFile(t, "contractions.json", `{"it's": "it is", "y'all": "you all"}`),
		TagRulesPath:     writeFile(t, "rules.yaml", "- word: actor\n  posTag: JJ\n  changeTo: NN\n"),
		UncountablePath:  writeFile(t, "nouns.yaml", "nouns:\n  - advice\n"),
	}

	dict, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(dict.Contractions) != 2 {
		t.Errorf("Expected 2 contractions, got %d", len(dict.Contractions))
	}

	comp := dict.Components()
	want := []struct{ word, from, to string }{{"actor", "JJ", "NN"}}
	if len(comp.Rules) != 1 || comp.Rules[0].Word != want[0].word ||
		string(comp.Rules[0].From) != want[0].from || string(comp.Rules[0].To) != want[0].to {
		t.Errorf("Rules = %+v", comp.Rules)
	}
	if !comp.Classifier.IsUncountable([]pos.Token{{Word: "Advice", Tag: pos.NN}}) {
		t.Error("advice should be uncountable after capitalization")
	}
}

func TestLoaderInvalid(t *testing.T) {
	tests := []struct {
		name   string
		loader Loader
	}{
		{"missing file", Loader{ContractionsPath: "/nonexistent/contractions.yaml"}},
		{"empty file", Loader{UncountablePath: writeFile(t, "empty.yaml", "  \n")}},
		{"malformed", Loader{ContractionsPath: writeFile(t, "bad.yaml", "- just\n- a list\n")}},
		{"incomplete rule", Loader{TagRulesPath: writeFile(t, "rules.yaml", "- word: actor\n")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.loader.Load()
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
