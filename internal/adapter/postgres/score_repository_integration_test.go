package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/moodguard/moodguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordScore_InsertThenAccumulate(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewScoreRepo(pool)
	ctx := context.Background()

	require.NoError(t, repo.RecordScore(ctx, 42, 0.5))
	require.NoError(t, repo.RecordScore(ctx, 42, -0.25))
	require.NoError(t, repo.RecordScore(ctx, 42, 1))

	score, err := repo.GetScore(ctx, 42)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, score, 1e-9)
}

func TestGetScore_UnseenUserIsZero(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewScoreRepo(pool)

	score, err := repo.GetScore(context.Background(), 999999)
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestRecordScore_ConcurrentIncrementsSameUser(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewScoreRepo(pool)
	ctx := context.Background()

	const writers = 10
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.RecordScore(ctx, 7, 0.5))
		}()
	}
	wg.Wait()

	score, err := repo.GetScore(ctx, 7)
	require.NoError(t, err)
	assert.InDelta(t, writers*0.5, score, 1e-9)
}

func TestTopN_OrderLimitAndTieBreak(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewScoreRepo(pool)
	ctx := context.Background()

	require.NoError(t, repo.RecordScore(ctx, 1, 5))
	require.NoError(t, repo.RecordScore(ctx, 2, 9))
	require.NoError(t, repo.RecordScore(ctx, 3, 9))

	top, err := repo.TopN(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, domain.LeaderboardEntry{UserID: 2, Score: 9}, top[0])
	assert.Equal(t, domain.LeaderboardEntry{UserID: 3, Score: 9}, top[1])
}

func TestTopN_EmptyStore(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewScoreRepo(pool)

	top, err := repo.TopN(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestStoreFeedback_Insert(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewFeedbackRepo(pool)
	ctx := context.Background()

	err := repo.StoreFeedback(ctx, domain.Feedback{
		UserID:    42,
		FirstName: "Ada",
		Username:  "ada",
		Message:   "more positivity summaries please",
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM feedback WHERE user_id = 42").Scan(&count))
	assert.Equal(t, 1, count)
}
