package standard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) seed(number int, name string) *ServiceStandard {
	std, err := New(id.StandardID(uuid.New()), number, name, "", time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, std))
	return std
}

func (s *InMemoryStoreSuite) TestCreate() {
	std := s.seed(1, "Understand users and their needs")

	s.Run("duplicate id conflicts", func() {
		s.ErrorIs(s.store.Create(s.ctx, std), sentinel.ErrConflict)
	})
}

func (s *InMemoryStoreSuite) TestActiveFilter() {
	std := s.seed(2, "Solve a whole problem for users")

	s.Run("active standard visible through both lookups", func() {
		got, err := s.store.GetByID(s.ctx, std.ID)
		s.Require().NoError(err)
		s.True(got.IsActive)

		got, err = s.store.GetActiveByID(s.ctx, std.ID)
		s.Require().NoError(err)
		s.Equal(std.ID, got.ID)
	})

	s.Run("soft-deleted standard hidden from active lookups only", func() {
		s.Require().NoError(s.store.SoftDelete(s.ctx, std.ID, time.Now().UTC()))

		_, err := s.store.GetActiveByID(s.ctx, std.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)

		got, err := s.store.GetByID(s.ctx, std.ID)
		s.Require().NoError(err)
		s.False(got.IsActive)
	})

	s.Run("second soft delete reports not found", func() {
		s.ErrorIs(s.store.SoftDelete(s.ctx, std.ID, time.Now().UTC()), sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestListActive() {
	third := s.seed(3, "Provide a joined up experience")
	first := s.seed(1, "Understand users and their needs")
	retired := s.seed(2, "Solve a whole problem for users")
	s.Require().NoError(s.store.SoftDelete(s.ctx, retired.ID, time.Now().UTC()))

	out, err := s.store.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Equal(first.ID, out[0].ID, "ordered by standard number")
	s.Equal(third.ID, out[1].ID)
}
