package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/cognicore/artikel/internal/logger"
	"github.com/cognicore/artikel/pkg/artikel/pos"
)

// RemoteRequest is the body POSTed to an annotation service.
type RemoteRequest struct {
	Tokens []string `json:"tokens"`
}

// RemoteResponse is the body an annotation service answers with.
type RemoteResponse struct {
	Tokens []pos.Token `json:"tokens"`
}

// Remote delegates tagging to an HTTP service, e.g. a spaCy or NLTK sidecar.
type Remote struct {
	url    string
	client *retryablehttp.Client
}

// NewRemote creates an annotator that POSTs to url. Transient failures are
// retried up to retryMax times.
func NewRemote(url string, retryMax int, timeout time.Duration, log *logrus.Logger) *Remote {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.HTTPClient.Timeout = timeout
	client.Backoff = retryablehttp.DefaultBackoff
	client.CheckRetry = retryPolicy
	client.Logger = nil
	if log != nil {
		client.Logger = logger.NewLeveledLogrus(log)
	}
	return &Remote{url: url, client: client}
}

// retryPolicy retries server errors but never client errors or a cancelled
// context.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if resp != nil && resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return false, err
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Annotate implements Annotator.
func (r *Remote) Annotate(ctx context.Context, words []string) ([]pos.Token, error) {
	body, err := json.Marshal(RemoteRequest{Tokens: words})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("annotation service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotation service: status %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	var out RemoteResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("annotation service: decode: %w", err)
	}
	if len(out.Tokens) != len(words) {
		return nil, fmt.Errorf("annotation service: got %d tokens for %d words", len(out.Tokens), len(words))
	}
	return out.Tokens, nil
}
