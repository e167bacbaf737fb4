package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/moodguard/moodguard/internal/metrics"
)

// queryTracer feeds per-query latency and error counts into Prometheus,
// labeled by SQL verb to keep cardinality flat.
type queryTracer struct{}

var _ pgx.QueryTracer = queryTracer{}

type traceKey struct{}

type traceData struct {
	start time.Time
	verb  string
}

func (queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceData{start: time.Now(), verb: sqlVerb(data.SQL)})
}

func (queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	td, ok := ctx.Value(traceKey{}).(traceData)
	if !ok {
		return
	}
	metrics.QueryDuration.WithLabelValues(td.verb).Observe(time.Since(td.start).Seconds())
	if data.Err != nil {
		metrics.QueryErrors.WithLabelValues(td.verb).Inc()
	}
}

func sqlVerb(sql string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	if verb == "" {
		return "other"
	}
	return strings.ToLower(verb)
}
