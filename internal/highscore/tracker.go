package highscore

import "sync"

// Tracker is the process-wide high score. It is loaded once and rewritten
// only when a finished session beats it.
type Tracker struct {
	mu    sync.Mutex
	store Store
	best  int
}

// NewTracker loads the current record from store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, best: store.Load()}
}

// Best returns the record held in memory.
func (t *Tracker) Best() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.best
}

// Submit records the final score of a session. It reports whether the score
// set a new record. The in-memory record is updated even if saving fails.
func (t *Tracker) Submit(score int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if score <= t.best {
		return false, nil
	}
	t.best = score
	return true, t.store.Save(score)
}
