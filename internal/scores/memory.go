// Package scores provides an in-memory ScoreStore and FeedbackStore for
// single-process use and tests. The durable implementation lives in the
// postgres adapter.
package scores

import (
	"context"
	"sort"
	"sync"

	"github.com/moodguard/moodguard/internal/domain"
)

// MemoryStore keeps cumulative scores and feedback in process memory.
// Safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	scores   map[int64]float64
	feedback []domain.Feedback
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[int64]float64)}
}

func (s *MemoryStore) RecordScore(_ context.Context, userID int64, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[userID] += score
	return nil
}

func (s *MemoryStore) GetScore(_ context.Context, userID int64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores[userID], nil
}

func (s *MemoryStore) TopN(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]domain.LeaderboardEntry, 0, len(s.scores))
	for userID, score := range s.scores {
		entries = append(entries, domain.LeaderboardEntry{UserID: userID, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *MemoryStore) StoreFeedback(_ context.Context, fb domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, fb)
	return nil
}

// Feedback returns a copy of all stored feedback, in insertion order.
func (s *MemoryStore) Feedback() []domain.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Feedback, len(s.feedback))
	copy(out, s.feedback)
	return out
}
