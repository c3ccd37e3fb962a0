package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "assure/pkg/domain-errors"
)

func TestParseRating(t *testing.T) {
	t.Run("accepts canonical values", func(t *testing.T) {
		for _, in := range []string{"RED", "AMBER", "GREEN"} {
			r, err := ParseRating(in)
			require.NoError(t, err)
			assert.Equal(t, Rating(in), r)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		r, err := ParseRating("  green ")
		require.NoError(t, err)
		assert.Equal(t, RatingGreen, r)

		r, err = ParseRating("Amber")
		require.NoError(t, err)
		assert.Equal(t, RatingAmber, r)
	})

	t.Run("rejects values outside the set", func(t *testing.T) {
		for _, in := range []string{"", "BLUE", "REDD", "0", "red green"} {
			_, err := ParseRating(in)
			require.Error(t, err, "input %q", in)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
			assert.Contains(t, err.Error(), "status must be one of: RED, AMBER, GREEN")
		}
	})
}

func TestRatingIsValid(t *testing.T) {
	assert.True(t, RatingRed.IsValid())
	assert.True(t, RatingAmber.IsValid())
	assert.True(t, RatingGreen.IsValid())
	assert.False(t, Rating("red").IsValid())
	assert.False(t, Rating("").IsValid())
}

func TestNewHistoryEntry(t *testing.T) {
	next := Assessment{
		Status:     RatingRed,
		Commentary: "concerns raised",
		ChangedBy:  "alice",
	}

	t.Run("first write diffs from empty strings", func(t *testing.T) {
		e := NewHistoryEntry(next, nil)
		assert.Equal(t, "", e.Changes.Status.From)
		assert.Equal(t, "RED", e.Changes.Status.To)
		assert.Equal(t, "", e.Changes.Commentary.From)
		assert.Equal(t, "concerns raised", e.Changes.Commentary.To)
		assert.Equal(t, "alice", e.ChangedBy)
		assert.False(t, e.Archived)
		assert.False(t, e.ID.IsNil())
	})

	t.Run("update diffs from previous values", func(t *testing.T) {
		previous := Assessment{Status: RatingGreen, Commentary: "all good"}
		e := NewHistoryEntry(next, &previous)
		assert.Equal(t, "GREEN", e.Changes.Status.From)
		assert.Equal(t, "RED", e.Changes.Status.To)
		assert.Equal(t, "all good", e.Changes.Commentary.From)
		assert.Equal(t, "concerns raised", e.Changes.Commentary.To)
	})
}
