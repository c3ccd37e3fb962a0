package deliverypartner

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

// InMemoryStore keeps delivery partners in a map.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[id.DeliveryPartnerID]DeliveryPartner
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{items: make(map[id.DeliveryPartnerID]DeliveryPartner)}
}

func (s *InMemoryStore) Create(_ context.Context, p *DeliveryPartner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[p.ID]; exists {
		return sentinel.ErrConflict
	}
	s.items[p.ID] = *p
	return nil
}

func (s *InMemoryStore) GetByID(_ context.Context, partnerID id.DeliveryPartnerID) (*DeliveryPartner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[partnerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryStore) ListActive(_ context.Context) ([]*DeliveryPartner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*DeliveryPartner, 0, len(s.items))
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

func (s *InMemoryStore) SoftDelete(_ context.Context, partnerID id.DeliveryPartnerID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[partnerID]
	if !ok || !p.IsActive {
		return sentinel.ErrNotFound
	}
	p.IsActive = false
	p.UpdatedAt = now
	s.items[partnerID] = p
	return nil
}

// PostgresStore persists delivery partners in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, p *DeliveryPartner) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO delivery_partners (id, name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID.String(), p.Name, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery partner: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, partnerID id.DeliveryPartnerID) (*DeliveryPartner, error) {
	var p DeliveryPartner
	var rawID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, is_active, created_at, updated_at FROM delivery_partners WHERE id = $1`,
		partnerID.String(),
	).Scan(&rawID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get delivery partner: %w", err)
	}
	parsed, err := id.ParseDeliveryPartnerID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan delivery partner id: %w", err)
	}
	p.ID = parsed
	return &p, nil
}

func (s *PostgresStore) ListActive(ctx context.Context) ([]*DeliveryPartner, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, is_active, created_at, updated_at
		 FROM delivery_partners WHERE is_active ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list delivery partners: %w", err)
	}
	defer rows.Close()

	var out []*DeliveryPartner
	for rows.Next() {
		var p DeliveryPartner
		var rawID string
		if err := rows.Scan(&rawID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery partner: %w", err)
		}
		parsed, err := id.ParseDeliveryPartnerID(rawID)
		if err != nil {
			return nil, fmt.Errorf("scan delivery partner id: %w", err)
		}
		p.ID = parsed
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SoftDelete(ctx context.Context, partnerID id.DeliveryPartnerID, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE delivery_partners SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active`,
		partnerID.String(), now,
	)
	if err != nil {
		return fmt.Errorf("soft delete delivery partner: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete delivery partner: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
