package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, clock clockwork.Clock, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("sk-test", "test-model", clock, WithBaseURL(srv.URL))
}

func TestComplete_Success(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	client := newTestClient(t, clockwork.NewRealClock(), func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Score: 0.8 [upbeat]"}},
			},
		})
	})

	got, err := client.Complete(context.Background(), "rate the sentiment", "what a day!")

	require.NoError(t, err)
	assert.Equal(t, "Score: 0.8 [upbeat]", got)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "what a day!", gotReq.Messages[1].Content)
}

func TestComplete_RateLimitedThenSuccess(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var calls atomic.Int32
	client := newTestClient(t, clock, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "0.1 [meh]"}},
			},
		})
	})

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := client.Complete(context.Background(), "sys", "user")
		done <- result{text, err}
	}()

	clock.BlockUntil(1)
	assert.Equal(t, int32(1), calls.Load())

	clock.Advance(2 * time.Second)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "0.1 [meh]", res.text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestComplete_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, clockwork.NewRealClock(), func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Complete(context.Background(), "sys", "user")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestComplete_NoChoices(t *testing.T) {
	client := newTestClient(t, clockwork.NewRealClock(), func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := client.Complete(context.Background(), "sys", "user")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGenerateImage_Success(t *testing.T) {
	var gotReq imageRequest
	client := newTestClient(t, clockwork.NewRealClock(), func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"url": "https://img.example/cat.png"}},
		})
	})

	url, err := client.GenerateImage(context.Background(), "a cheerful mascot")

	require.NoError(t, err)
	assert.Equal(t, "https://img.example/cat.png", url)
	assert.Equal(t, 1, gotReq.N)
	assert.Equal(t, "1024x1024", gotReq.Size)
}

func TestRetryAfterDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, retryAfterDelay("5"))
	assert.Equal(t, defaultRetryAfter, retryAfterDelay(""))
	assert.Equal(t, defaultRetryAfter, retryAfterDelay("soon"))
}
