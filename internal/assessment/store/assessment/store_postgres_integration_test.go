//go:build integration

package assessment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"assure/internal/assessment/models"
	"assure/internal/assessment/store/assessment"
	id "assure/pkg/domain"
	"assure/pkg/platform/sentinel"
	"assure/pkg/testutil/containers"
)

type PostgresSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *assessment.Postgres
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = assessment.NewPostgres(s.postgres.DB)
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "assessments"))
}

func newAssessment() *models.Assessment {
	return &models.Assessment{
		ID:           id.AssessmentID(uuid.New()),
		ProjectID:    id.ProjectID(uuid.New()),
		StandardID:   id.StandardID(uuid.New()),
		ProfessionID: id.ProfessionID(uuid.New()),
		Status:       models.RatingGreen,
		Commentary:   "on track",
		ChangedBy:    "alice",
		LastUpdated:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresSuite) TestFindMissing() {
	_, err := s.store.Find(context.Background(), models.Key{
		ProjectID:    id.ProjectID(uuid.New()),
		StandardID:   id.StandardID(uuid.New()),
		ProfessionID: id.ProfessionID(uuid.New()),
	})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresSuite) TestUpsertRoundTrip() {
	ctx := context.Background()
	a := newAssessment()
	s.Require().NoError(s.store.Upsert(ctx, a))

	got, err := s.store.Find(ctx, a.Key())
	s.Require().NoError(err)
	s.Equal(a.ID, got.ID)
	s.Equal(a.Status, got.Status)
	s.Equal(a.Commentary, got.Commentary)
	s.Equal(a.ChangedBy, got.ChangedBy)
	s.WithinDuration(a.LastUpdated, got.LastUpdated, time.Millisecond)
}

func (s *PostgresSuite) TestUpsertReplacesOnConflict() {
	ctx := context.Background()
	a := newAssessment()
	s.Require().NoError(s.store.Upsert(ctx, a))

	updated := *a
	updated.Status = models.RatingRed
	updated.Commentary = "slipping"
	updated.ChangedBy = "bob"
	updated.LastUpdated = a.LastUpdated.Add(time.Hour)
	s.Require().NoError(s.store.Upsert(ctx, &updated))

	got, err := s.store.Find(ctx, a.Key())
	s.Require().NoError(err)
	s.Equal(a.ID, got.ID, "id is stable across updates")
	s.Equal(models.RatingRed, got.Status)
	s.Equal("slipping", got.Commentary)
	s.Equal("bob", got.ChangedBy)

	var count int
	err = s.postgres.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM assessments").Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count, "one row per composite key")
}
