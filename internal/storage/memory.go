package storage

import (
	"context"
	"sync"

	"github.com/xaenox/memedb/internal/models"
)

// MemoryStore keeps feedback in process memory. The mutex matters: unlike a
// single-threaded serverless runtime, the HTTP server appends from concurrent
// handlers.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*models.Feedback
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, feedback)
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]*models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}
	start := len(s.entries) - limit

	out := make([]*models.Feedback, limit)
	copy(out, s.entries[start:])
	return out, nil
}

func (s *MemoryStore) All(_ context.Context) ([]*models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Feedback, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries), nil
}

func (s *MemoryStore) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
