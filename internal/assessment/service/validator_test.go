package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assure/internal/assessment/models"
	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
)

// scriptedResolver returns canned errors per reference kind.
type scriptedResolver struct {
	projectErr    error
	standardErr   error
	professionErr error
}

func (r *scriptedResolver) ResolveProject(context.Context, id.ProjectID) error {
	return r.projectErr
}

func (r *scriptedResolver) ResolveActiveStandard(context.Context, id.StandardID) error {
	return r.standardErr
}

func (r *scriptedResolver) ResolveActiveProfession(context.Context, id.ProfessionID) error {
	return r.professionErr
}

func testKey() models.Key {
	return models.Key{
		ProjectID:    id.ProjectID(uuid.New()),
		StandardID:   id.StandardID(uuid.New()),
		ProfessionID: id.ProfessionID(uuid.New()),
	}
}

func TestValidatorCheckOrder(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")

	t.Run("status is checked before any reference", func(t *testing.T) {
		v := NewValidator(&scriptedResolver{projectErr: boom})
		_, err := v.Validate(ctx, testKey(), models.SubmitRequest{Status: "PURPLE"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status must be one of")
	})

	t.Run("infrastructure fault surfaces as internal, not bad request", func(t *testing.T) {
		v := NewValidator(&scriptedResolver{standardErr: boom})
		_, err := v.Validate(ctx, testKey(), models.SubmitRequest{Status: "GREEN"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
		assert.False(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("all references valid returns canonical rating", func(t *testing.T) {
		v := NewValidator(&scriptedResolver{})
		rating, err := v.Validate(ctx, testKey(), models.SubmitRequest{Status: "amber"})
		require.NoError(t, err)
		assert.Equal(t, models.RatingAmber, rating)
	})
}
