package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/artikel/pkg/artikel"
	"github.com/cognicore/artikel/pkg/artikel/annotate"
	"github.com/cognicore/artikel/pkg/artikel/config"
	"github.com/cognicore/artikel/pkg/artikel/segment"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

type checkerFunc func(ctx context.Context, text string) ([]suggest.SentenceResult, error)

func (f checkerFunc) ProcessText(ctx context.Context, text string) ([]suggest.SentenceResult, error) {
	return f(ctx, text)
}

func newChecker(t *testing.T) *artikel.Checker {
	t.Helper()
	dict, err := (&config.Loader{}).Load()
	require.NoError(t, err)
	comp := dict.Components()
	c, err := artikel.New(artikel.Options{
		Normalizer: comp.Normalizer,
		Annotator:  annotate.NewLexicon(nil),
		Rules:      comp.Rules,
		Classifier: comp.Classifier,
		Segmenter:  segment.Simple{},
		Workers:    2,
	})
	require.NoError(t, err)
	return c
}

func post(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/processText", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestProcessText(t *testing.T) {
	router := setupRouter(newChecker(t))

	res := post(router, `{"text": "He is actor.\n\nCats played with cat toys"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "application/json", res.Header().Get("Content-Type"))
	assert.Empty(t, res.Header().Get(failedHeader))

	var got []suggest.SentenceResult
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "He is actor.", got[0].Text)
	require.Len(t, got[0].Suggestions, 1)
	assert.Equal(t, 6, got[0].Suggestions[0].Start)
	assert.Equal(t, 12, got[0].Suggestions[0].End)
	assert.Equal(t, suggest.EmptyText, got[1].Text)
	assert.Equal(t, suggest.EmptyText, got[2].Text)
	assert.Equal(t, "Cats played with cat toys", got[3].Text)
	assert.Len(t, got[3].Suggestions, 2)
}

func TestProcessTextJSONShape(t *testing.T) {
	router := setupRouter(newChecker(t))

	res := post(router, `{"text": "There are two cats"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `[{"text":"There are two cats","suggestions":[]}]`, res.Body.String())
}

func TestProcessTextBadRequest(t *testing.T) {
	router := setupRouter(newChecker(t))

	for _, body := range []string{`{"text": ""}`, `{}`, `not json`} {
		res := post(router, body)
		assert.Equal(t, http.StatusBadRequest, res.Code, body)
	}

	res := post(router, `{"text": "`+strings.Repeat("a", maxBodyBytes)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.Code)
}

func TestProcessTextPartialFailure(t *testing.T) {
	checker := checkerFunc(func(context.Context, string) ([]suggest.SentenceResult, error) {
		return []suggest.SentenceResult{{Text: "A cat.", Suggestions: []suggest.Offset{}}},
			errors.Join(&artikel.SentenceError{Index: 1, Text: "boom", Err: errors.New("cannot tag")})
	})
	router := setupRouter(checker)

	res := post(router, `{"text": "A cat. boom"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "1", res.Header().Get(failedHeader))
	assert.JSONEq(t, `[{"text":"A cat.","suggestions":[]}]`, res.Body.String())
}

func TestProcessTextFailure(t *testing.T) {
	checker := checkerFunc(func(context.Context, string) ([]suggest.SentenceResult, error) {
		return nil, errors.New("segmenter down")
	})
	router := setupRouter(checker)

	res := post(router, `{"text": "A cat."}`)
	assert.Equal(t, http.StatusInternalServerError, res.Code)
}

func TestAliveAndHealth(t *testing.T) {
	router := setupRouter(newChecker(t))

	req := httptest.NewRequest(http.MethodGet, "/alive", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `"Active"`, res.Body.String())
	assert.Equal(t, config.VersionString, res.Header().Get(versionHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestCreate(t *testing.T) {
	srv := Create(newChecker(t), 8123)
	assert.Equal(t, ":8123", srv.Addr)
	assert.Equal(t, ReadHeaderTimeout, srv.ReadHeaderTimeout)
}
