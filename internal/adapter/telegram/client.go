// Package telegram is the chat transport adapter: a thin Bot API client
// with long polling, uniform rate-limit retry, and client-side pacing.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/moodguard/moodguard/internal/metrics"
	"github.com/moodguard/moodguard/internal/platform/retry"
)

const defaultBaseURL = "https://api.telegram.org"

// Telegram allows roughly 30 messages per second bot-wide; pacing below
// that keeps the retry path for genuine flood control only.
const (
	sendRatePerSecond = 25
	sendBurst         = 5
)

// Client calls the Telegram Bot API. Every call goes through the shared
// retry wrapper, so flood-control responses (429 with retry_after)
// suspend the calling flow for exactly the instructed delay and retry.
type Client struct {
	token       string
	baseURL     string
	httpClient  *http.Client
	clock       clockwork.Clock
	limiter     *rate.Limiter
	retryPolicy retry.Policy
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(token string, clock clockwork.Clock, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 90 * time.Second},
		clock:      clock,
		limiter:    rate.NewLimiter(sendRatePerSecond, sendBurst),
		retryPolicy: retry.Policy{
			OnRetry: func(attempt int, err error, wait time.Duration) {
				metrics.RateLimitWaits.WithLabelValues("telegram").Inc()
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call posts a method to the Bot API and returns the raw result. This is
// the single funnel for every outbound transport call: pacing, retry,
// and error mapping all happen here.
func (c *Client) call(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	return retry.Do(ctx, c.clock, c.retryPolicy, func() (json.RawMessage, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacing wait aborted: %w", err)
		}
		return c.post(ctx, method, payload)
	})
}

func (c *Client) post(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", method, err)
	}

	if !apiResp.Ok {
		if apiResp.ErrorCode == http.StatusTooManyRequests && apiResp.Parameters != nil {
			return nil, &retry.RateLimitedError{
				RetryAfter: time.Duration(apiResp.Parameters.RetryAfter) * time.Second,
				Err:        fmt.Errorf("%s: %s", method, apiResp.Description),
			}
		}
		return nil, fmt.Errorf("%s failed: %s (code %d)", method, apiResp.Description, apiResp.ErrorCode)
	}

	return apiResp.Result, nil
}
