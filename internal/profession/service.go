package profession

import (
	"context"
	"errors"

	"github.com/google/uuid"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/sentinel"
	"assure/pkg/requestcontext"
)

// Service orchestrates profession CRUD.
type Service struct {
	store    Store
	onDelete func(ctx context.Context, professionID id.ProfessionID)
}

// Option configures optional service behaviour.
type Option func(*Service)

// WithDeleteHook runs fn after a successful soft-delete. Wiring uses it to
// drop the reference cache entry so the deletion is visible immediately.
func WithDeleteHook(fn func(ctx context.Context, professionID id.ProfessionID)) Option {
	return func(s *Service) { s.onDelete = fn }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, name string) (*Profession, error) {
	p, err := New(id.ProfessionID(uuid.New()), name, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create profession")
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, professionID id.ProfessionID) (*Profession, error) {
	p, err := s.store.GetByID(ctx, professionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "profession not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profession")
	}
	return p, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*Profession, error) {
	out, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list professions")
	}
	return out, nil
}

// Delete soft-deletes a profession. Already-deleted professions read as missing.
func (s *Service) Delete(ctx context.Context, professionID id.ProfessionID) error {
	err := s.store.SoftDelete(ctx, professionID, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "profession not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete profession")
	}
	if s.onDelete != nil {
		s.onDelete(ctx, professionID)
	}
	return nil
}
