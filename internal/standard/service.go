package standard

import (
	"context"
	"errors"

	"github.com/google/uuid"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/sentinel"
	"assure/pkg/requestcontext"
)

// Service orchestrates service standard CRUD.
type Service struct {
	store    Store
	onDelete func(ctx context.Context, standardID id.StandardID)
}

// Option configures optional service behaviour.
type Option func(*Service)

// WithDeleteHook runs fn after a successful soft-delete. Wiring uses it to
// drop the reference cache entry so the deletion is visible immediately.
func WithDeleteHook(fn func(ctx context.Context, standardID id.StandardID)) Option {
	return func(s *Service) { s.onDelete = fn }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, number int, name, description string) (*ServiceStandard, error) {
	std, err := New(id.StandardID(uuid.New()), number, name, description, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, std); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create standard")
	}
	return std, nil
}

func (s *Service) Get(ctx context.Context, standardID id.StandardID) (*ServiceStandard, error) {
	std, err := s.store.GetByID(ctx, standardID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "standard not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load standard")
	}
	return std, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*ServiceStandard, error) {
	out, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list standards")
	}
	return out, nil
}

// Delete soft-deletes a standard. Already-deleted standards read as missing.
func (s *Service) Delete(ctx context.Context, standardID id.StandardID) error {
	err := s.store.SoftDelete(ctx, standardID, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "standard not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete standard")
	}
	if s.onDelete != nil {
		s.onDelete(ctx, standardID)
	}
	return nil
}
