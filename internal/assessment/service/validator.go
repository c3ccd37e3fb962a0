package service

import (
	"context"
	"errors"

	"assure/internal/assessment/models"
	"assure/internal/assessment/resolver"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/sentinel"
)

// Validator checks a candidate assessment against the rating enumeration and
// the referential rules. Checks run in a fixed order and short-circuit on the
// first failure, so a caller always sees exactly one actionable message:
// status, then project, then standard, then profession.
type Validator struct {
	refs resolver.ReferenceResolver
}

func NewValidator(refs resolver.ReferenceResolver) *Validator {
	return &Validator{refs: refs}
}

// Validate returns the parsed canonical rating on success, or a
// CodeBadRequest error describing the first rule the candidate broke.
// Infrastructure faults from the resolver surface as CodeInternal.
func (v *Validator) Validate(ctx context.Context, key models.Key, req models.SubmitRequest) (models.Rating, error) {
	rating, err := models.ParseRating(req.Status)
	if err != nil {
		return "", err
	}

	if err := v.refs.ResolveProject(ctx, key.ProjectID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeBadRequest, "referenced project does not exist")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve project")
	}

	if err := v.refs.ResolveActiveStandard(ctx, key.StandardID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeBadRequest, "referenced service standard does not exist or is inactive")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve service standard")
	}

	if err := v.refs.ResolveActiveProfession(ctx, key.ProfessionID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeBadRequest, "referenced profession does not exist or is inactive")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve profession")
	}

	return rating, nil
}
