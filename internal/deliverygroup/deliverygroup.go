// Package deliverygroup provides CRUD for delivery groups, the organisational
// units projects report under. No audit coupling: plain keyed persistence.
package deliverygroup

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/sentinel"
	"assure/pkg/requestcontext"
)

// DeliveryGroup is an organisational grouping of projects.
type DeliveryGroup struct {
	ID        id.DeliveryGroupID `json:"id"`
	Name      string             `json:"name"`
	IsActive  bool               `json:"is_active"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Store is the persistence contract; implementations return
// sentinel.ErrNotFound for absent groups.
type Store interface {
	Create(ctx context.Context, g *DeliveryGroup) error
	GetByID(ctx context.Context, groupID id.DeliveryGroupID) (*DeliveryGroup, error)
	ListActive(ctx context.Context) ([]*DeliveryGroup, error)
	SoftDelete(ctx context.Context, groupID id.DeliveryGroupID, now time.Time) error
}

// Service orchestrates delivery group CRUD.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, name string) (*DeliveryGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "delivery group name is required")
	}
	now := requestcontext.Now(ctx)
	g := &DeliveryGroup{
		ID:        id.DeliveryGroupID(uuid.New()),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, g); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create delivery group")
	}
	return g, nil
}

func (s *Service) Get(ctx context.Context, groupID id.DeliveryGroupID) (*DeliveryGroup, error) {
	g, err := s.store.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "delivery group not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load delivery group")
	}
	return g, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*DeliveryGroup, error) {
	out, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list delivery groups")
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, groupID id.DeliveryGroupID) error {
	err := s.store.SoftDelete(ctx, groupID, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "delivery group not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete delivery group")
	}
	return nil
}
