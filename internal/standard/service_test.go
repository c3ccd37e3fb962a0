package standard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
)

func TestServiceDeleteHook(t *testing.T) {
	ctx := context.Background()

	t.Run("hook fires after a successful soft-delete", func(t *testing.T) {
		store := NewInMemoryStore()
		var invalidated []id.StandardID
		svc := NewService(store, WithDeleteHook(func(_ context.Context, standardID id.StandardID) {
			invalidated = append(invalidated, standardID)
		}))

		std, err := svc.Create(ctx, 1, "Understand users and their needs", "")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, std.ID))
		require.Len(t, invalidated, 1)
		assert.Equal(t, std.ID, invalidated[0])
	})

	t.Run("hook does not fire when the delete fails", func(t *testing.T) {
		store := NewInMemoryStore()
		fired := false
		svc := NewService(store, WithDeleteHook(func(context.Context, id.StandardID) {
			fired = true
		}))

		std, err := svc.Create(ctx, 2, "Solve a whole problem for users", "")
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, std.ID))
		fired = false

		err = svc.Delete(ctx, std.ID)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
		assert.False(t, fired)
	})

	t.Run("service without a hook deletes normally", func(t *testing.T) {
		store := NewInMemoryStore()
		svc := NewService(store)

		std, err := svc.Create(ctx, 3, "Provide a joined up experience", "")
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, std.ID))
	})
}
