package store

import "sync"

// MemoryStore keeps histories in process memory. The default backend; the
// SQLite store carries the same contract across restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	turns    map[string][]Turn
	capacity int
}

// Compile-time check.
var _ Storer = (*MemoryStore)(nil)

// NewMemoryStore creates a store retaining at most capacity turns per
// caller. Capacity must be positive.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryStore{
		turns:    make(map[string][]Turn),
		capacity: capacity,
	}
}

// Append adds a turn, evicting the oldest entry when full. The write lock
// serializes appends, so concurrent callers never interleave within a
// single append.
func (s *MemoryStore) Append(callerID string, turn Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := append(s.turns[callerID], turn)
	if len(log) > s.capacity {
		// Copy instead of re-slicing so evicted turns release their backing
		// array.
		trimmed := make([]Turn, s.capacity)
		copy(trimmed, log[len(log)-s.capacity:])
		log = trimmed
	}
	s.turns[callerID] = log
	return nil
}

// Recent returns a copy of the caller's retained turns, oldest first.
func (s *MemoryStore) Recent(callerID string) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.turns[callerID]
	out := make([]Turn, len(log))
	copy(out, log)
	return out, nil
}

// Clear drops the caller's history.
func (s *MemoryStore) Clear(callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.turns, callerID)
	return nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error { return nil }
