package profession

import (
	"context"
	"sort"
	"sync"
	"time"

	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

// InMemoryStore keeps professions in a map. Used by tests and DB-less runs.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[id.ProfessionID]Profession
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{items: make(map[id.ProfessionID]Profession)}
}

func (s *InMemoryStore) Create(_ context.Context, p *Profession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[p.ID]; exists {
		return sentinel.ErrConflict
	}
	s.items[p.ID] = *p
	return nil
}

func (s *InMemoryStore) GetByID(_ context.Context, professionID id.ProfessionID) (*Profession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[professionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryStore) GetActiveByID(_ context.Context, professionID id.ProfessionID) (*Profession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[professionID]
	if !ok || !p.IsActive {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryStore) ListActive(_ context.Context) ([]*Profession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Profession, 0, len(s.items))
	for _, p := range s.items {
		if !p.IsActive {
			continue
		}
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) SoftDelete(_ context.Context, professionID id.ProfessionID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[professionID]
	if !ok || !p.IsActive {
		return sentinel.ErrNotFound
	}
	p.IsActive = false
	p.UpdatedAt = now
	s.items[professionID] = p
	return nil
}
