//go:build integration

package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"assure/internal/assessment/models"
	"assure/internal/assessment/store/history"
	id "assure/pkg/domain"
	"assure/pkg/testutil/containers"
)

type PostgresSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *history.Postgres
	key      models.Key
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = history.NewPostgres(s.postgres.DB)
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "assessment_history"))
	s.key = models.Key{
		ProjectID:    id.ProjectID(uuid.New()),
		StandardID:   id.StandardID(uuid.New()),
		ProfessionID: id.ProfessionID(uuid.New()),
	}
}

func (s *PostgresSuite) newEntry(at time.Time, statusTo string) models.HistoryEntry {
	return models.HistoryEntry{
		ID:           id.HistoryID(uuid.New()),
		ProjectID:    s.key.ProjectID,
		StandardID:   s.key.StandardID,
		ProfessionID: s.key.ProfessionID,
		ChangedBy:    "tester",
		Timestamp:    at,
		Changes: models.Changes{
			Status: models.FieldChange{To: statusTo},
		},
	}
}

func (s *PostgresSuite) TestListByKeyOrdering() {
	ctx := context.Background()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	older := s.newEntry(base, "GREEN")
	newer := s.newEntry(base.Add(time.Minute), "AMBER")
	// Same timestamp as newer; later insertion must list first.
	tied := s.newEntry(base.Add(time.Minute), "RED")

	for _, e := range []models.HistoryEntry{older, newer, tied} {
		s.Require().NoError(s.store.Append(ctx, e))
	}

	out, err := s.store.ListByKey(ctx, s.key)
	s.Require().NoError(err)
	s.Require().Len(out, 3)
	s.Equal(tied.ID, out[0].ID)
	s.Equal(newer.ID, out[1].ID)
	s.Equal(older.ID, out[2].ID)
}

func (s *PostgresSuite) TestListByKeyRoundTripsDiff() {
	ctx := context.Background()
	entry := s.newEntry(time.Now().UTC().Truncate(time.Microsecond), "RED")
	entry.Changes.Status.From = "GREEN"
	entry.Changes.Commentary = models.FieldChange{From: "fine", To: "not fine"}

	s.Require().NoError(s.store.Append(ctx, entry))

	out, err := s.store.ListByKey(ctx, s.key)
	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal(entry.Changes, out[0].Changes)
	s.Equal("tester", out[0].ChangedBy)
	s.WithinDuration(entry.Timestamp, out[0].Timestamp, time.Millisecond)
}

func (s *PostgresSuite) TestArchive() {
	ctx := context.Background()
	entry := s.newEntry(time.Now().UTC(), "GREEN")
	s.Require().NoError(s.store.Append(ctx, entry))

	ok, err := s.store.Archive(ctx, s.key, entry.ID)
	s.Require().NoError(err)
	s.True(ok)

	out, err := s.store.ListByKey(ctx, s.key)
	s.Require().NoError(err)
	s.Empty(out, "archived entries are hidden from listing")

	ok, err = s.store.Archive(ctx, s.key, entry.ID)
	s.Require().NoError(err)
	s.False(ok, "archive is not idempotent-true")

	wrongKey := s.key
	wrongKey.ProjectID = id.ProjectID(uuid.New())
	other := s.newEntry(time.Now().UTC(), "AMBER")
	s.Require().NoError(s.store.Append(ctx, other))
	ok, err = s.store.Archive(ctx, wrongKey, other.ID)
	s.Require().NoError(err)
	s.False(ok, "key mismatch never archives")
}
