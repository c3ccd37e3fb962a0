package project

import (
	"context"
	"sort"
	"sync"

	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

// InMemoryStore keeps projects in a map. Used by tests and DB-less runs.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[id.ProjectID]Project
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{items: make(map[id.ProjectID]Project)}
}

func (s *InMemoryStore) Create(_ context.Context, p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[p.ID]; exists {
		return sentinel.ErrConflict
	}
	s.items[p.ID] = *p
	return nil
}

func (s *InMemoryStore) GetByID(_ context.Context, projectID id.ProjectID) (*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[projectID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Project, 0, len(s.items))
	for _, p := range s.items {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[p.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.items[p.ID] = *p
	return nil
}
