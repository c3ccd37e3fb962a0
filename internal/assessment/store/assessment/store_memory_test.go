package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"assure/internal/assessment/models"
	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	key   models.Key
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.key = models.Key{
		ProjectID:    id.ProjectID(uuid.New()),
		StandardID:   id.StandardID(uuid.New()),
		ProfessionID: id.ProfessionID(uuid.New()),
	}
}

func (s *InMemorySuite) TestFind() {
	s.Run("missing key returns not found", func() {
		_, err := s.store.Find(s.ctx, s.key)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemorySuite) TestUpsert() {
	a := &models.Assessment{
		ID:           id.AssessmentID(uuid.New()),
		ProjectID:    s.key.ProjectID,
		StandardID:   s.key.StandardID,
		ProfessionID: s.key.ProfessionID,
		Status:       models.RatingGreen,
		Commentary:   "on track",
		ChangedBy:    "alice",
		LastUpdated:  time.Now().UTC(),
	}

	s.Run("insert then find round-trips", func() {
		s.Require().NoError(s.store.Upsert(s.ctx, a))
		got, err := s.store.Find(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(a, got)
	})

	s.Run("replace keeps one record per key", func() {
		updated := *a
		updated.Status = models.RatingRed
		updated.Commentary = "slipping"
		s.Require().NoError(s.store.Upsert(s.ctx, &updated))

		got, err := s.store.Find(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(a.ID, got.ID)
		s.Equal(models.RatingRed, got.Status)
		s.Equal("slipping", got.Commentary)
	})

	s.Run("returned value is a copy", func() {
		got, err := s.store.Find(s.ctx, s.key)
		s.Require().NoError(err)
		got.Status = models.RatingAmber

		again, err := s.store.Find(s.ctx, s.key)
		s.Require().NoError(err)
		s.Equal(models.RatingRed, again.Status)
	})
}
