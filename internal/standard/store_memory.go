package standard

import (
	"context"
	"sort"
	"sync"
	"time"

	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

// InMemoryStore keeps standards in a map. Used by tests and DB-less runs.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[id.StandardID]ServiceStandard
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{items: make(map[id.StandardID]ServiceStandard)}
}

func (s *InMemoryStore) Create(_ context.Context, std *ServiceStandard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[std.ID]; exists {
		return sentinel.ErrConflict
	}
	s.items[std.ID] = *std
	return nil
}

func (s *InMemoryStore) GetByID(_ context.Context, standardID id.StandardID) (*ServiceStandard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	std, ok := s.items[standardID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &std, nil
}

func (s *InMemoryStore) GetActiveByID(_ context.Context, standardID id.StandardID) (*ServiceStandard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	std, ok := s.items[standardID]
	if !ok || !std.IsActive {
		return nil, sentinel.ErrNotFound
	}
	return &std, nil
}

func (s *InMemoryStore) ListActive(_ context.Context) ([]*ServiceStandard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*ServiceStandard, 0, len(s.items))
	for _, std := range s.items {
		if !std.IsActive {
			continue
		}
		std := std
		out = append(out, &std)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s *InMemoryStore) SoftDelete(_ context.Context, standardID id.StandardID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	std, ok := s.items[standardID]
	if !ok || !std.IsActive {
		return sentinel.ErrNotFound
	}
	std.IsActive = false
	std.UpdatedAt = now
	s.items[standardID] = std
	return nil
}
