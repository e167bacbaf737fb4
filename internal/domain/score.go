package domain

import "context"

// LeaderboardEntry is a live ranking row derived from the score store.
type LeaderboardEntry struct {
	UserID int64
	Score  float64
}

// ScoreStore is the single source of truth for per-user cumulative
// reputation. Implementations must make RecordScore an atomic additive
// update (no lost increments under concurrent calls) and must let
// GetScore observe any RecordScore that completed before it.
type ScoreStore interface {
	// RecordScore adds score to the user's cumulative total, creating the
	// record with that value if the user has never been scored.
	RecordScore(ctx context.Context, userID int64, score float64) error

	// GetScore returns the cumulative score, or 0 for an unseen user.
	GetScore(ctx context.Context, userID int64) (float64, error)

	// TopN returns up to limit entries ordered by score descending.
	// Ties are broken by ascending user ID.
	TopN(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// Feedback is a single user-submitted feedback record.
type Feedback struct {
	UserID    int64
	FirstName string
	Username  string
	Message   string
}

// FeedbackStore is an append-only sink for user feedback.
type FeedbackStore interface {
	StoreFeedback(ctx context.Context, fb Feedback) error
}
