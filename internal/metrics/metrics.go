// Package metrics defines the Prometheus instruments for the moderation
// pipeline and its outbound calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics
var (
	// MessagesProcessed counts inbound group messages that completed the
	// pipeline, by outcome (dispatched, silent, store_error).
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodguard_messages_processed_total",
			Help: "Inbound group messages processed by pipeline outcome",
		},
		[]string{"outcome"},
	)

	// MessageScores observes the per-message sentiment score distribution.
	MessageScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodguard_message_score",
			Help:    "Distribution of per-message sentiment scores",
			Buckets: []float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75, 1},
		},
	)

	// SummariesBroadcast counts rolling-window summary messages sent.
	SummariesBroadcast = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodguard_summaries_broadcast_total",
			Help: "Rolling-window average summaries broadcast to the group",
		},
	)
)

// Classifier metrics
var (
	// ClassificationFailures counts hard provider failures recovered with a
	// neutral score.
	ClassificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodguard_classification_failures_total",
			Help: "Hard classifier failures recovered as neutral sentiment",
		},
	)

	// ScoreParseFailures counts classifier responses without a parseable score.
	ScoreParseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodguard_score_parse_failures_total",
			Help: "Classifier responses with no parseable numeric score",
		},
	)
)

// Moderation metrics
var (
	// ModerationActions counts triggered actions by kind (warn, mute) and
	// status (ok, failed).
	ModerationActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodguard_moderation_actions_total",
			Help: "Moderation actions by kind and status",
		},
		[]string{"kind", "status"},
	)
)

// Outbound call metrics
var (
	// RateLimitWaits counts rate-limit retries by external component.
	RateLimitWaits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodguard_rate_limit_waits_total",
			Help: "Rate-limit suspensions by external component",
		},
		[]string{"component"},
	)

	// StoreFailures counts score store persistence failures.
	StoreFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodguard_store_failures_total",
			Help: "Score store persistence failures",
		},
	)
)

// Database metrics, fed by the pgx query tracer
var (
	// QueryDuration observes query latency by SQL verb.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodguard_db_query_duration_seconds",
			Help:    "Database query latency by SQL verb",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	// QueryErrors counts failed queries by SQL verb.
	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodguard_db_query_errors_total",
			Help: "Failed database queries by SQL verb",
		},
		[]string{"query"},
	)
)
