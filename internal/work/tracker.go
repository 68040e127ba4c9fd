package work

import "sync"

// Tracker correlates in-flight unit IDs with caller-defined bookkeeping.
// T is whatever the submitter needs back when a result arrives (an ordinal,
// a page number, a retry count). All methods are safe for concurrent use.
type Tracker[T any] struct {
	mu    sync.RWMutex
	units map[string]T
}

// NewTracker creates a tracker with an initialized map.
func NewTracker[T any]() *Tracker[T] {
	return &Tracker[T]{
		units: make(map[string]T),
	}
}

// Register records a pending unit.
func (t *Tracker[T]) Register(unitID string, info T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.units[unitID] = info
}

// Get returns a pending unit without removing it.
func (t *Tracker[T]) Get(unitID string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	info, ok := t.units[unitID]
	return info, ok
}

// GetAndRemove returns and removes a pending unit atomically.
func (t *Tracker[T]) GetAndRemove(unitID string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	info, ok := t.units[unitID]
	if ok {
		delete(t.units, unitID)
	}
	return info, ok
}

// Count returns the number of pending units.
func (t *Tracker[T]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.units)
}
