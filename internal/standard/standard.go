// Package standard provides CRUD for the service standard catalogue.
// Standards are soft-deleted: an inactive standard is invisible to active
// lookups, which is how the assessment validator treats it as nonexistent.
package standard

import (
	"context"
	"strings"
	"time"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
)

// ServiceStandard is one entry of the fixed service standard catalogue.
type ServiceStandard struct {
	ID          id.StandardID `json:"id"`
	Number      int           `json:"number"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// New validates and constructs an active service standard.
func New(standardID id.StandardID, number int, name, description string, now time.Time) (*ServiceStandard, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "standard name is required")
	}
	if number <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "standard number must be positive")
	}
	return &ServiceStandard{
		ID:          standardID,
		Number:      number,
		Name:        name,
		Description: strings.TrimSpace(description),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Store is the persistence contract. Active lookups filter at the query
// level so a soft-deleted standard is indistinguishable from a missing one.
// Implementations return sentinel.ErrNotFound for absent (or, on the active
// lookups, inactive) standards.
type Store interface {
	Create(ctx context.Context, s *ServiceStandard) error
	GetByID(ctx context.Context, standardID id.StandardID) (*ServiceStandard, error)
	GetActiveByID(ctx context.Context, standardID id.StandardID) (*ServiceStandard, error)
	ListActive(ctx context.Context) ([]*ServiceStandard, error)
	SoftDelete(ctx context.Context, standardID id.StandardID, now time.Time) error
}
