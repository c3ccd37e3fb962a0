// Package profession provides CRUD for assessing professions. Like service
// standards, professions are soft-deleted and inactive ones are invisible to
// active lookups.
package profession

import (
	"context"
	"strings"
	"time"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
)

// Profession is a discipline that scores assessments (e.g. architecture,
// delivery management).
type Profession struct {
	ID        id.ProfessionID `json:"id"`
	Name      string          `json:"name"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// New validates and constructs an active profession.
func New(professionID id.ProfessionID, name string, now time.Time) (*Profession, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "profession name is required")
	}
	return &Profession{
		ID:        professionID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Store is the persistence contract; active lookups filter in the query.
// Implementations return sentinel.ErrNotFound for absent or (on active
// lookups) inactive professions.
type Store interface {
	Create(ctx context.Context, p *Profession) error
	GetByID(ctx context.Context, professionID id.ProfessionID) (*Profession, error)
	GetActiveByID(ctx context.Context, professionID id.ProfessionID) (*Profession, error)
	ListActive(ctx context.Context) ([]*Profession, error)
	SoftDelete(ctx context.Context, professionID id.ProfessionID, now time.Time) error
}
