package deliverygroup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

// InMemoryStore keeps delivery groups in a map.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[id.DeliveryGroupID]DeliveryGroup
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{items: make(map[id.DeliveryGroupID]DeliveryGroup)}
}

func (s *InMemoryStore) Create(_ context.Context, g *DeliveryGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[g.ID]; exists {
		return sentinel.ErrConflict
	}
	s.items[g.ID] = *g
	return nil
}

func (s *InMemoryStore) GetByID(_ context.Context, groupID id.DeliveryGroupID) (*DeliveryGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.items[groupID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &g, nil
}

func (s *InMemoryStore) ListActive(_ context.Context) ([]*DeliveryGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*DeliveryGroup, 0, len(s.items))
	for _, g := range s.items {
		if !g.IsActive {
			continue
		}
		g := g
		out = append(out, &g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) SoftDelete(_ context.Context, groupID id.DeliveryGroupID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.items[groupID]
	if !ok || !g.IsActive {
		return sentinel.ErrNotFound
	}
	g.IsActive = false
	g.UpdatedAt = now
	s.items[groupID] = g
	return nil
}

// PostgresStore persists delivery groups in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, g *DeliveryGroup) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO delivery_groups (id, name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		g.ID.String(), g.Name, g.IsActive, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery group: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, groupID id.DeliveryGroupID) (*DeliveryGroup, error) {
	var g DeliveryGroup
	var rawID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, is_active, created_at, updated_at FROM delivery_groups WHERE id = $1`,
		groupID.String(),
	).Scan(&rawID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get delivery group: %w", err)
	}
	parsed, err := id.ParseDeliveryGroupID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan delivery group id: %w", err)
	}
	g.ID = parsed
	return &g, nil
}

func (s *PostgresStore) ListActive(ctx context.Context) ([]*DeliveryGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, is_active, created_at, updated_at
		 FROM delivery_groups WHERE is_active ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list delivery groups: %w", err)
	}
	defer rows.Close()

	var out []*DeliveryGroup
	for rows.Next() {
		var g DeliveryGroup
		var rawID string
		if err := rows.Scan(&rawID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery group: %w", err)
		}
		parsed, err := id.ParseDeliveryGroupID(rawID)
		if err != nil {
			return nil, fmt.Errorf("scan delivery group id: %w", err)
		}
		g.ID = parsed
		out = append(out, &g)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SoftDelete(ctx context.Context, groupID id.DeliveryGroupID, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE delivery_groups SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active`,
		groupID.String(), now,
	)
	if err != nil {
		return fmt.Errorf("soft delete delivery group: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete delivery group: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
