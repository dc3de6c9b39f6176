package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory plan store for development and testing.
// Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]*Plan
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]*Plan)}
}

// Get retrieves a plan by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *plan
	return &cp, nil
}

// Put stores a plan.
func (s *MemoryStore) Put(ctx context.Context, plan *Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *plan
	s.plans[plan.ID] = &cp
	return nil
}

// List returns up to limit plans, newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Plan, 0, len(s.plans))
	for _, plan := range s.plans {
		cp := *plan
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes a plan.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.plans, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
