// Package openai is the text-generation provider adapter: chat
// completions for classification, quotes, welcomes and answers, plus
// image generation. Rate limits are retried via the shared wrapper.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/moodguard/moodguard/internal/metrics"
	"github.com/moodguard/moodguard/internal/platform/retry"
)

const (
	defaultBaseURL = "https://api.openai.com"

	maxCompletionTokens = 150

	// defaultRetryAfter applies when a 429 arrives without a Retry-After
	// header.
	defaultRetryAfter = 1 * time.Second
)

type Client struct {
	apiKey      string
	model       string
	baseURL     string
	httpClient  *http.Client
	clock       clockwork.Clock
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

func NewClient(apiKey, model string, clock clockwork.Clock, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		clock:      clock,
		retryPolicy: retry.Policy{
			OnRetry: func(attempt int, err error, wait time.Duration) {
				metrics.RateLimitWaits.WithLabelValues("openai").Inc()
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type imageRequest struct {
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Complete sends a system instruction plus user text and returns the
// model's reply.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	req := chatRequest{
		Model:     c.model,
		MaxTokens: maxCompletionTokens,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	var resp chatResponse
	if err := c.post(ctx, "/v1/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("completion failed: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage produces a single 1024x1024 image and returns its URL.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req := imageRequest{Prompt: prompt, N: 1, Size: "1024x1024"}

	var resp imageResponse
	if err := c.post(ctx, "/v1/images/generations", req, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("image generation failed: %s", resp.Error.Message)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image generation returned no data")
	}
	return resp.Data[0].URL, nil
}

// post is the single funnel for provider calls; rate limits retry here.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return retry.DoVoid(ctx, c.clock, c.retryPolicy, func() error {
		return c.postOnce(ctx, path, payload, out)
	})
}

func (c *Client) postOnce(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &retry.RateLimitedError{
			RetryAfter: retryAfterDelay(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("provider rate limited: %s", resp.Status),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned %s: %s", resp.Status, truncate(raw, 200))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

func retryAfterDelay(header string) time.Duration {
	if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultRetryAfter
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
