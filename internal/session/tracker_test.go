package session

import (
	"sync"
	"testing"
)

func TestIncrementAndCount(t *testing.T) {
	tracker := NewFrequencyTracker()
	tracker.Increment("Silence Suzuka")
	tracker.Increment("Silence Suzuka")
	tracker.Increment("Special Week")

	if got := tracker.Count("Silence Suzuka"); got != 2 {
		t.Errorf("Count(Silence Suzuka) = %d, want 2", got)
	}
	if got := tracker.Count("Special Week"); got != 1 {
		t.Errorf("Count(Special Week) = %d, want 1", got)
	}
	if got := tracker.Count("Unseen"); got != 0 {
		t.Errorf("Count(Unseen) = %d, want 0", got)
	}
}

func TestIncrementIgnoresEmptyName(t *testing.T) {
	tracker := NewFrequencyTracker()
	tracker.Increment("")
	if snap := tracker.Snapshot(); len(snap) != 0 {
		t.Errorf("Snapshot() = %v, want empty", snap)
	}
}

func TestResetClearsCountsAndRotatesID(t *testing.T) {
	tracker := NewFrequencyTracker()
	tracker.Increment("Silence Suzuka")
	before := tracker.ID()

	tracker.Reset()

	if got := tracker.Count("Silence Suzuka"); got != 0 {
		t.Errorf("Count after Reset = %d, want 0", got)
	}
	if tracker.ID() == before {
		t.Errorf("Reset kept the session ID")
	}
}

func TestNilTrackerIsInert(t *testing.T) {
	var tracker *FrequencyTracker
	tracker.Increment("anything")
	if tracker.Count("anything") != 0 {
		t.Errorf("nil tracker count should be 0")
	}
	if tracker.ID() != "" {
		t.Errorf("nil tracker ID should be empty")
	}
	tracker.Reset()
}

func TestConcurrentIncrements(t *testing.T) {
	tracker := NewFrequencyTracker()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tracker.Increment("Silence Suzuka")
				_ = tracker.Count("Silence Suzuka")
			}
		}()
	}
	wg.Wait()

	if got := tracker.Count("Silence Suzuka"); got != 800 {
		t.Errorf("Count = %d, want 800", got)
	}
}
