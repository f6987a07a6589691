package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/cognicore/artikel/pkg/artikel"
	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

// failedHeader carries the number of sentences left out of a partial result.
const failedHeader = "X-Artikel-Failed-Sentences"

// maxBodyBytes bounds the request body.
const maxBodyBytes = 1 << 20

// TextChecker is the part of the checker the handlers use.
type TextChecker interface {
	ProcessText(ctx context.Context, text string) ([]suggest.SentenceResult, error)
}

// TextRequest is the body of POST /api/processText.
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

var validate = validator.New()

// AliveHandler answers liveness probes.
func AliveHandler(w http.ResponseWriter, r *http.Request) {
	if err := encodeJSON(w, "Active"); err != nil {
		renderError(w, err, http.StatusInternalServerError)
	}
}

// ProcessTextHandler checks the posted text and returns one result per
// sentence. Sentences that fail are left out and counted in the
// X-Artikel-Failed-Sentences header.
func ProcessTextHandler(checker TextChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var req TextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(w, fmt.Errorf("%w: %w", internalerr.ErrInvalidInput, err), http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			renderError(w, fmt.Errorf("%w: text is required", internalerr.ErrInvalidInput), http.StatusBadRequest)
			return
		}

		results, err := checker.ProcessText(r.Context(), req.Text)
		if err != nil {
			failed := artikel.FailedSentences(err)
			if len(failed) == 0 {
				renderError(w, err, http.StatusInternalServerError)
				return
			}
			log.WithError(err).Warnf("%d sentences failed", len(failed))
			w.Header().Set(failedHeader, strconv.Itoa(len(failed)))
		}
		if results == nil {
			results = []suggest.SentenceResult{}
		}

		if err := encodeJSON(w, results); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}

func encodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, err error, status int) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	if status >= http.StatusInternalServerError {
		log.Error(err)
	}
	http.Error(w, err.Error(), status)
}
