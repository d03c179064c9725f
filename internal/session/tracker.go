// Package session holds per-session state the match engine reads but never
// owns: how often each owner has been confirmed since the session began.
//
// A session corresponds to one training run with one character; callers
// create a fresh tracker (or Reset the existing one) whenever that context
// changes. The engine consults the tracker to break ties among same-named
// event variants and never mutates it.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// FrequencyTracker counts owner confirmations within a session. Safe for
// concurrent increments and reads.
type FrequencyTracker struct {
	mu     sync.RWMutex
	id     string
	counts map[string]int
}

// NewFrequencyTracker returns an empty tracker with a fresh session ID.
func NewFrequencyTracker() *FrequencyTracker {
	return &FrequencyTracker{
		id:     uuid.NewString(),
		counts: make(map[string]int),
	}
}

// ID returns the session identifier. History rows are stamped with it so
// entries from one training run group together.
func (t *FrequencyTracker) ID() string {
	if t == nil {
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.id
}

// Increment records one confirmation of the named owner.
func (t *FrequencyTracker) Increment(ownerName string) {
	if t == nil || ownerName == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[ownerName]++
}

// Count returns how often the named owner has been confirmed.
func (t *FrequencyTracker) Count(ownerName string) int {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counts[ownerName]
}

// Reset clears all counts and assigns a new session ID.
func (t *FrequencyTracker) Reset() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts = make(map[string]int)
	t.id = uuid.NewString()
}

// Snapshot returns a copy of the current counts.
func (t *FrequencyTracker) Snapshot() map[string]int {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]int, len(t.counts))
	for name, count := range t.counts {
		out[name] = count
	}
	return out
}
