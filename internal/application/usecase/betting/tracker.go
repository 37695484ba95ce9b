// Package betting contains bet-related use cases.
package betting

import (
	"sync"

	"github.com/google/uuid"
)

// CheckTracker guards settlement checks so the same bet is never checked
// twice concurrently and only one batch run exists at a time.
type CheckTracker struct {
	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
	batch    bool
}

// NewCheckTracker creates a new CheckTracker instance.
func NewCheckTracker() *CheckTracker {
	return &CheckTracker{
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// TryBeginBet marks the bet as being checked. It returns false when a check
// for that bet is already in flight.
func (t *CheckTracker) TryBeginBet(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.inFlight[id]; ok {
		return false
	}
	t.inFlight[id] = struct{}{}
	return true
}

// EndBet clears the in-flight mark for the bet.
func (t *CheckTracker) EndBet(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inFlight, id)
}

// IsChecking reports whether the bet has a check in flight.
func (t *CheckTracker) IsChecking(id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.inFlight[id]
	return ok
}

// TryBeginBatch claims the single batch slot. It returns false when a batch
// run is already in flight.
func (t *CheckTracker) TryBeginBatch() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.batch {
		return false
	}
	t.batch = true
	return true
}

// EndBatch releases the batch slot.
func (t *CheckTracker) EndBatch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.batch = false
}

// IsBatchRunning reports whether a batch run is in flight.
func (t *CheckTracker) IsBatchRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.batch
}
