// Package assessment provides current-state persistence for assessments,
// keyed by (project, standard, profession).
package assessment

import (
	"context"
	"sync"

	"assure/internal/assessment/models"
	"assure/pkg/platform/sentinel"
)

// InMemory keeps current assessments in a map. Used by tests and DB-less runs.
type InMemory struct {
	mu    sync.RWMutex
	items map[models.Key]models.Assessment
}

func NewInMemory() *InMemory {
	return &InMemory{items: make(map[models.Key]models.Assessment)}
}

// Find returns the current assessment for the key, or sentinel.ErrNotFound.
func (s *InMemory) Find(_ context.Context, key models.Key) (*models.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.items[key]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &a, nil
}

// Upsert inserts or replaces the assessment for its composite key. The store
// performs no validation; the service has already validated.
func (s *InMemory) Upsert(_ context.Context, a *models.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[a.Key()] = *a
	return nil
}
