// Package deliverypartner provides CRUD for external delivery partners.
// The engagement model linking partners to projects is out of scope; this is
// plain keyed persistence for the partner records themselves.
package deliverypartner

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

// DeliveryPartner is an external organisation delivering on projects.
type DeliveryPartner struct {
	ID        id.DeliveryPartnerID `json:"id"`
	Name      string               `json:"name"`
	IsActive  bool                 `json:"is_active"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Store is the persistence contract; implementations return
// sentinel.ErrNotFound for absent partners.
type Store interface {
	Create(ctx context.Context, p *DeliveryPartner) error
	GetByID(ctx context.Context, partnerID id.DeliveryPartnerID) (*DeliveryPartner, error)
	ListActive(ctx context.Context) ([]*DeliveryPartner, error)
	SoftDelete(ctx context.Context, partnerID id.DeliveryPartnerID, now time.Time) error
}

// Service orchestrates delivery partner CRUD.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, name string) (*DeliveryPartner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "delivery partner name is required")
	}
	now := requestcontext.Now(ctx)
	p := &DeliveryPartner{
		ID:        id.DeliveryPartnerID(uuid.New()),
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create delivery partner")
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, partnerID id.DeliveryPartnerID) (*DeliveryPartner, error) {
	p, err := s.store.GetByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "delivery partner not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load delivery partner")
	}
	return p, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*DeliveryPartner, error) {
	out, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list delivery partners")
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, partnerID id.DeliveryPartnerID) error {
	err := s.store.SoftDelete(ctx, partnerID, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "delivery partner not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete delivery partner")
	}
	return nil
}
