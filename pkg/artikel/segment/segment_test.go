package segment

import (
	"errors"
	"reflect"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single sentence", "He is actor.", []string{"He is actor."}},
		{"two sentences", "He is actor. It is fine!", []string{"He is actor.", "It is fine!"}},
		{"two lines", "He is actor.\nCats played.", []string{"He is actor.", "", "Cats played."}},
		{"blank line", "A cat.\n\nA dog.", []string{"A cat.", "", "", "A dog."}},
		{"trailing newline", "A cat.\n", []string{"A cat.", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(tt.text, Simple{})
			if err != nil {
				t.Fatalf("Lines: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLinesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Lines("x", Func(func(string) ([]string, error) { return nil, boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestSimple(t *testing.T) {
	got, _ := Simple{}.Sentences("Pi is 3.14 today. Is it?  Yes")
	want := []string{"Pi is 3.14 today.", "Is it?", "Yes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences = %q, want %q", got, want)
	}
}

func TestProse(t *testing.T) {
	got, err := Prose{}.Sentences("He is actor. It is beautiful city.")
	if err != nil {
		t.Fatalf("Sentences: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sentences %q, want 2", len(got), got)
	}
}
