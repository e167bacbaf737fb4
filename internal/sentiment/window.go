package sentiment

import "sync"

// WindowSize is the number of observed messages that triggers a summary.
const WindowSize = 5

// Summary is the rolling-window report emitted after WindowSize messages.
type Summary struct {
	MessageCount int
	AverageScore float64
}

// Window accumulates recent per-message scores for the whole group (not
// per user) and emits their arithmetic mean every WindowSize messages,
// then resets. State is in-memory only: a restart loses the partial
// window, which is acceptable for an informational summary.
type Window struct {
	mu     sync.Mutex
	scores []float64
}

func NewWindow() *Window {
	return &Window{scores: make([]float64, 0, WindowSize)}
}

// Observe appends a score to the window. When the window fills it returns
// the summary and true, and the window is empty again on return.
func (w *Window) Observe(score float64) (Summary, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.scores = append(w.scores, score)
	if len(w.scores) < WindowSize {
		return Summary{}, false
	}

	var sum float64
	for _, s := range w.scores {
		sum += s
	}
	summary := Summary{
		MessageCount: len(w.scores),
		AverageScore: sum / float64(len(w.scores)),
	}
	w.scores = w.scores[:0]
	return summary, true
}

// Len reports the number of scores currently in the window.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.scores)
}
