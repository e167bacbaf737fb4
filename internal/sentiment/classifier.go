package sentiment

import (
	"context"
	"log/slog"

	"github.com/moodguard/moodguard/internal/domain"
	"github.com/moodguard/moodguard/internal/metrics"
)

const classifyInstruction = "Analyze the sentiment of the following chat message and provide a score from -1 (very negative) to 1 (very positive) and give a short explanation in []:"

// Classifier assigns a sentiment score to a message via the
// text-generation provider. Rate limits are handled inside the provider
// client; any remaining error is a hard failure and degrades to neutral.
type Classifier struct {
	completer domain.Completer
}

func NewClassifier(completer domain.Completer) *Classifier {
	return &Classifier{completer: completer}
}

// Classify never fails: a hard provider error yields (0, "") and the
// caller proceeds as if sentiment were neutral.
func (c *Classifier) Classify(ctx context.Context, text string) (float64, string) {
	raw, err := c.completer.Complete(ctx, classifyInstruction, text)
	if err != nil {
		slog.ErrorContext(ctx, "classification unavailable, falling back to neutral", "error", err)
		metrics.ClassificationFailures.Inc()
		return 0, ""
	}

	score, ok := ParseScore(raw)
	if !ok {
		slog.WarnContext(ctx, "failed to parse score, defaulting to neutral", "raw", raw)
		metrics.ScoreParseFailures.Inc()
	}

	return score, ParseExplanation(raw)
}
