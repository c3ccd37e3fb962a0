// Package project provides CRUD for delivery projects. Projects are
// referenced by assessments; existence alone makes a project assessable.
package project

import (
	"context"
	"strings"
	"time"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
)

// Project is a software delivery project under assurance.
type Project struct {
	ID          id.ProjectID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// New validates and constructs a project.
func New(projectID id.ProjectID, name, description string, now time.Time) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "project name is required")
	}
	if len(name) > 200 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "project name must be 200 characters or less")
	}
	return &Project{
		ID:          projectID,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Store is the persistence contract. Implementations return
// sentinel.ErrNotFound for missing projects.
type Store interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, projectID id.ProjectID) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
}
