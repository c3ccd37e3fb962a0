// Package history provides the append-only audit log of assessment changes.
// Entries are immutable once written; only the archived flag may flip.
package history

import (
	"context"
	"sort"
	"sync"

	"assure/internal/assessment/models"
	id "assure/pkg/domain"
)

// InMemory keeps history entries in insertion order.
type InMemory struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// Append records one entry. Append-only: nothing is ever overwritten.
func (s *InMemory) Append(_ context.Context, entry models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// ListByKey returns non-archived entries for the key, newest first.
// Timestamp ties are broken by insertion order, later insertions first,
// matching the postgres store's (changed_at DESC, seq DESC) ordering.
func (s *InMemory) ListByKey(_ context.Context, key models.Key) ([]models.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.HistoryEntry
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.Key() == key && !e.Archived {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Archive marks a matching non-archived entry as archived. Returns true iff
// the entry existed, belonged to the key and was not already archived.
func (s *InMemory) Archive(_ context.Context, key models.Key, historyID id.HistoryID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		e := &s.entries[i]
		if e.ID == historyID && e.Key() == key && !e.Archived {
			e.Archived = true
			return true, nil
		}
	}
	return false, nil
}
