package project

import (
	"context"
	"errors"

	"github.com/google/uuid"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/sentinel"
	"assure/pkg/requestcontext"
)

// Service orchestrates project CRUD.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, name, description string) (*Project, error) {
	p, err := New(id.ProjectID(uuid.New()), name, description, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create project")
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, projectID id.ProjectID) (*Project, error) {
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "project not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load project")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Project, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list projects")
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, projectID id.ProjectID, name, description string) (*Project, error) {
	existing, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	updated, err := New(projectID, name, description, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	updated.CreatedAt = existing.CreatedAt
	if err := s.store.Update(ctx, updated); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "project not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update project")
	}
	return updated, nil
}
