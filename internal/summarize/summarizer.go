// Package summarize wraps the text-summarization collaborator. The language
// model itself runs in a separate inference process; this package only knows
// how to ask it for a summary over HTTP. Handlers depend on the Summarizer
// interface, not on the HTTP client, so tests substitute stubs.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Decoding parameters for the generation call. They are fixed for every
// request: the model serves one purpose and callers never tune decoding.
const (
	// MaxNewTokens caps the decoded summary length.
	MaxNewTokens = 150
	// numBeams is the beam-search width.
	numBeams = 2
	// lengthPenalty biases beam search toward longer sequences.
	lengthPenalty = 2.0
)

// Summarizer is the capability the API layer needs: text in, summary out.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// generateRequest is the payload sent to the inference endpoint.
type generateRequest struct {
	Content       string  `json:"content"`
	MaxNewTokens  int     `json:"max_new_tokens"`
	NumBeams      int     `json:"num_beams"`
	LengthPenalty float64 `json:"length_penalty"`
	EarlyStopping bool    `json:"early_stopping"`
}

// generateResponse is the payload returned by the inference endpoint.
type generateResponse struct {
	Summary string `json:"summary"`
}

// Client calls a text-generation inference endpoint.  It is safe for
// concurrent use.
type Client struct {
	url    string
	http   *http.Client
	logger zerolog.Logger
}

// NewClient builds a Client for the inference endpoint at url.  The
// timeout bounds the whole generation round trip; generation is slow,
// so callers should allow tens of seconds.
func NewClient(url string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "summarizer").Logger(),
	}
}

// Summarize sends the text to the inference endpoint with the fixed
// decoding parameters and returns the decoded summary.  Any transport
// or endpoint failure is returned as-is; there are no retries, the
// caller answers the request with a server fault.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Content:       text,
		MaxNewTokens:  MaxNewTokens,
		NumBeams:      numBeams,
		LengthPenalty: lengthPenalty,
		EarlyStopping: true,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call summarizer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for the log line, then discard.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error().Int("status", resp.StatusCode).Bytes("body", snippet).Msg("summarizer returned non-200")
		return "", fmt.Errorf("summarizer returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode summarizer response: %w", err)
	}

	c.logger.Debug().Dur("took", time.Since(start)).Int("input_len", len(text)).Msg("generated summary")
	return out.Summary, nil
}
