// Package resolver confirms that the entities an assessment references exist
// and, for standards and professions, are active. It is a pure read-through:
// the active filter lives in the entity stores' query contracts, so a
// soft-deleted entity is indistinguishable here from one that never existed.
package resolver

import (
	"context"

	"assure/internal/profession"
	"assure/internal/project"
	"assure/internal/standard"
	id "assure/pkg/domain"
)

// ProjectSource is the slice of the project store the resolver needs.
type ProjectSource interface {
	GetByID(ctx context.Context, projectID id.ProjectID) (*project.Project, error)
}

// StandardSource is the slice of the standard store the resolver needs.
type StandardSource interface {
	GetActiveByID(ctx context.Context, standardID id.StandardID) (*standard.ServiceStandard, error)
}

// ProfessionSource is the slice of the profession store the resolver needs.
type ProfessionSource interface {
	GetActiveByID(ctx context.Context, professionID id.ProfessionID) (*profession.Profession, error)
}

// Resolver answers existence questions for assessment references. All
// methods return sentinel.ErrNotFound (from the underlying store) for
// missing or inactive entities; any other error is an infrastructure fault.
type Resolver struct {
	projects    ProjectSource
	standards   StandardSource
	professions ProfessionSource
}

func New(projects ProjectSource, standards StandardSource, professions ProfessionSource) *Resolver {
	return &Resolver{projects: projects, standards: standards, professions: professions}
}

// ResolveProject confirms the project exists. Projects have no active flag;
// existence alone suffices.
func (r *Resolver) ResolveProject(ctx context.Context, projectID id.ProjectID) error {
	_, err := r.projects.GetByID(ctx, projectID)
	return err
}

// ResolveActiveStandard confirms the standard exists and is active.
func (r *Resolver) ResolveActiveStandard(ctx context.Context, standardID id.StandardID) error {
	_, err := r.standards.GetActiveByID(ctx, standardID)
	return err
}

// ResolveActiveProfession confirms the profession exists and is active.
func (r *Resolver) ResolveActiveProfession(ctx context.Context, professionID id.ProfessionID) error {
	_, err := r.professions.GetActiveByID(ctx, professionID)
	return err
}
