package correlation

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag_AttachesID(t *testing.T) {
	ctx := Tag(context.Background())

	id, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Len(t, id, 12)
}

func TestTag_UniqueIDs(t *testing.T) {
	ids := make(map[string]struct{}, 100)
	for range 100 {
		id, _ := FromContext(Tag(context.Background()))
		ids[id] = struct{}{}
	}
	assert.Len(t, ids, 100)
}

func TestFromContext_Missing(t *testing.T) {
	id, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestHandler_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(NewHandler(inner))

	ctx := Tag(context.Background())
	logger.InfoContext(ctx, "test message", "key", "value")

	id, _ := FromContext(ctx)
	output := buf.String()
	assert.Contains(t, output, "trace_id="+id)
	assert.Contains(t, output, "key=value")
}

func TestHandler_UntaggedContextPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(NewHandler(inner))

	logger.InfoContext(context.Background(), "plain message")

	assert.NotContains(t, buf.String(), "trace_id")
}
