package annotate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jdkato/prose/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/pos"
)

func tagsOf(tokens []pos.Token) []pos.Tag { return pos.Tags(tokens) }

func TestFinalize(t *testing.T) {
	in := []pos.Token{
		{Word: "It", Tag: "PRP"},
		{Word: "is", Tag: pos.VBZ},
		{Word: "Actor", Tag: pos.JJ},
		{Word: "it", Tag: "PRP"},
	}
	rules := []Rule{{Word: "actor", From: pos.JJ, To: pos.NN}, {Word: "is", From: pos.NN, To: pos.VBZ}}

	got := Finalize(in, rules)
	assert.Equal(t, []pos.Tag{pos.IT, pos.VBZ, pos.NN, pos.IT}, tagsOf(got))
	assert.Equal(t, pos.Tag("PRP"), in[0].Tag, "input must not be modified")
}

func TestWithRules(t *testing.T) {
	ctx := context.Background()

	short := Func(func(_ context.Context, words []string) ([]pos.Token, error) {
		return []pos.Token{{Word: words[0], Tag: pos.NN}}, nil
	})
	_, err := WithRules(short, nil).Annotate(ctx, []string{"a", "b"})
	assert.ErrorIs(t, err, internalerr.ErrAnnotation)

	boom := errors.New("boom")
	failing := Func(func(context.Context, []string) ([]pos.Token, error) { return nil, boom })
	_, err = WithRules(failing, nil).Annotate(ctx, []string{"a"})
	assert.ErrorIs(t, err, internalerr.ErrAnnotation)
	assert.ErrorIs(t, err, boom)
}

func TestLexicon(t *testing.T) {
	lex := NewLexicon(map[string]pos.Tag{"Actor": pos.NN})
	tests := []struct {
		words []string
		want  []pos.Tag
	}{
		{[]string{"it", "is", "beautiful", "city"}, []pos.Tag{"PRP", pos.VBZ, pos.JJ, pos.NN}},
		{[]string{"he", "is", "actor"}, []pos.Tag{"PRP", pos.VBZ, pos.NN}},
		{[]string{"All", "of", "students", "were", "present"}, []pos.Tag{pos.DT, pos.IN, pos.NNS, pos.VBD, pos.JJ}},
		{[]string{"Cats", "played", "with", "cat", "toys"}, []pos.Tag{pos.NNS, pos.VBD, pos.IN, pos.NN, pos.NNS}},
		{[]string{"In", "greatest", "city", "in", "world"}, []pos.Tag{pos.IN, pos.JJS, pos.NN, pos.IN, pos.NN}},
		{[]string{"there", "are", "2,000", "glass", "", "bus"}, []pos.Tag{pos.EX, "VBP", pos.CD, pos.NN, pos.SYM, pos.NN}},
	}
	for _, tt := range tests {
		got, err := lex.Annotate(context.Background(), tt.words)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tagsOf(got), "%v", tt.words)
	}

	got, _ := lex.Annotate(context.Background(), []string{"Paris", "is", "in", "France"})
	assert.False(t, got[0].Entity, "sentence-initial word is never an entity")
	assert.True(t, got[3].Entity)
	assert.Equal(t, pos.NNP, got[3].Tag)
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  quokka: NN\n  present: VB\n"), 0o644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)

	tag, ok := lex.Lookup("Quokka")
	assert.True(t, ok)
	assert.Equal(t, pos.NN, tag)
	tag, _ = lex.Lookup("present")
	assert.Equal(t, pos.Tag("VB"), tag)

	_, err = LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAlign(t *testing.T) {
	words := []string{"John", "met", "Mary", "o'clock", ""}
	pieces := []prose.Token{
		{Text: "John", Tag: "NNP", Label: "B-PERSON"},
		{Text: "met", Tag: "VBD", Label: "O"},
		{Text: "Mary", Tag: "NNP", Label: "B-PERSON"},
		{Text: "o", Tag: "JJ", Label: "O"},
		{Text: "'clock", Tag: "NN", Label: "O"},
	}
	got := align(words, pieces)

	assert.Equal(t, []pos.Tag{"NNP", "VBD", "NNP", "JJ", pos.SYM}, tagsOf(got))
	assert.False(t, got[0].Entity)
	assert.True(t, got[2].Entity)
	assert.False(t, got[3].Entity)
}

func TestRemote(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var req RemoteRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		resp := RemoteResponse{}
		for _, word := range req.Tokens {
			resp.Tokens = append(resp.Tokens, pos.Token{Word: word, Tag: pos.NN})
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	r := NewRemote(srv.URL, 2, time.Second, nil)
	r.client.RetryWaitMin = time.Millisecond
	r.client.RetryWaitMax = time.Millisecond

	got, err := r.Annotate(context.Background(), []string{"cat", "toys"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRemoteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad":
			http.Error(w, "no", http.StatusBadRequest)
		case "/short":
			_, _ = w.Write([]byte(`{"tokens":[{"word":"a","tag":"DT"}]}`))
		default:
			_, _ = w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	for _, path := range []string{"/bad", "/short", "/garbage"} {
		r := NewRemote(srv.URL+path, 0, time.Second, nil)
		_, err := r.Annotate(context.Background(), []string{"a", "cat"})
		assert.Error(t, err, path)
	}
}
