package betting

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestTrackerRejectsDuplicateBetCheck(t *testing.T) {
	tracker := NewCheckTracker()
	id := uuid.New()

	if !tracker.TryBeginBet(id) {
		t.Fatal("expected first claim to succeed")
	}
	if tracker.TryBeginBet(id) {
		t.Error("expected second claim on the same bet to fail")
	}
	if !tracker.TryBeginBet(uuid.New()) {
		t.Error("expected a different bet to claim independently")
	}

	tracker.EndBet(id)
	if !tracker.TryBeginBet(id) {
		t.Error("expected claim to succeed again after release")
	}
}

func TestTrackerSingleBatchSlot(t *testing.T) {
	tracker := NewCheckTracker()

	if !tracker.TryBeginBatch() {
		t.Fatal("expected first batch claim to succeed")
	}
	if tracker.TryBeginBatch() {
		t.Error("expected second batch claim to fail")
	}

	tracker.EndBatch()
	if !tracker.TryBeginBatch() {
		t.Error("expected batch claim to succeed again after release")
	}
}

func TestTrackerConcurrentClaims(t *testing.T) {
	tracker := NewCheckTracker()
	id := uuid.New()

	const workers = 50
	var wins int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tracker.TryBeginBet(id) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly one winner, got %d", wins)
	}
}
