package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "assure/pkg/domain-errors"
)

func TestParseProjectID(t *testing.T) {
	t.Run("valid UUID parses", func(t *testing.T) {
		raw := uuid.NewString()
		id, err := ParseProjectID(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
		assert.False(t, id.IsNil())
	})

	t.Run("empty input rejected", func(t *testing.T) {
		_, err := ParseProjectID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Contains(t, err.Error(), "project id is required")
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseProjectID("not-a-uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid UUID")
	})

	t.Run("nil UUID rejected", func(t *testing.T) {
		_, err := ParseProjectID(uuid.Nil.String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be the nil UUID")
	})
}

func TestParseHistoryID(t *testing.T) {
	_, err := ParseHistoryID("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history entry id is not a valid UUID")
}

func TestIDTextRoundTrip(t *testing.T) {
	original := StandardID(uuid.New())

	text, err := original.MarshalText()
	require.NoError(t, err)

	var decoded StandardID
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, original, decoded)
}
