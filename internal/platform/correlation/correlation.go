// Package correlation threads a per-update trace ID through contexts so
// every log line emitted while handling one inbound message can be tied
// together.
package correlation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

const attrKey = "trace_id"

type ctxKey struct{}

// Tag attaches a fresh trace ID to ctx. Called once per inbound message
// at dispatch.
func Tag(ctx context.Context) context.Context {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return context.WithValue(ctx, ctxKey{}, hex.EncodeToString(b))
}

// FromContext returns the trace ID carried by ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// NewHandler wraps inner so records logged with a tagged context carry
// the trace_id attribute. Records without one pass through untouched.
func NewHandler(inner slog.Handler) slog.Handler {
	return tracingHandler{inner: inner}
}

type tracingHandler struct {
	inner slog.Handler
}

func (h tracingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h tracingHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := FromContext(ctx); ok {
		r.AddAttrs(slog.String(attrKey, id))
	}
	return h.inner.Handle(ctx, r)
}

func (h tracingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tracingHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h tracingHandler) WithGroup(name string) slog.Handler {
	return tracingHandler{inner: h.inner.WithGroup(name)}
}
