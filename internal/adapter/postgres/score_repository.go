package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moodguard/moodguard/internal/domain"
)

// ScoreRepo is the durable ScoreStore. The additive upsert makes
// RecordScore atomic: concurrent increments for the same user never lose
// updates because the addition happens inside the statement.
type ScoreRepo struct {
	pool *pgxpool.Pool
}

func NewScoreRepo(pool *pgxpool.Pool) *ScoreRepo {
	return &ScoreRepo{pool: pool}
}

func (r *ScoreRepo) RecordScore(ctx context.Context, userID int64, score float64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_scores (user_id, score) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET score = user_scores.score + EXCLUDED.score
	`, userID, score)
	if err != nil {
		return fmt.Errorf("failed to record score for user %d: %w: %w", userID, domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *ScoreRepo) GetScore(ctx context.Context, userID int64) (float64, error) {
	var score float64
	err := r.pool.QueryRow(ctx, "SELECT score FROM user_scores WHERE user_id = $1", userID).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get score for user %d: %w: %w", userID, domain.ErrStoreUnavailable, err)
	}
	return score, nil
}

func (r *ScoreRepo) TopN(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, score FROM user_scores
		ORDER BY score DESC, user_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Score); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w: %w", domain.ErrStoreUnavailable, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return entries, nil
}
