package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moodguard/moodguard/internal/domain"
)

// FeedbackRepo is the append-only feedback sink.
type FeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

func (r *FeedbackRepo) StoreFeedback(ctx context.Context, fb domain.Feedback) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO feedback (user_id, first_name, username, feedback_message)
		VALUES ($1, $2, $3, $4)
	`, fb.UserID, fb.FirstName, fb.Username, fb.Message)
	if err != nil {
		return fmt.Errorf("failed to store feedback from user %d: %w: %w", fb.UserID, domain.ErrStoreUnavailable, err)
	}
	return nil
}
