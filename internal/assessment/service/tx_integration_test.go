//go:build integration

package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"assure/internal/assessment/models"
	assessmentstore "assure/internal/assessment/store/assessment"
	historystore "assure/internal/assessment/store/history"
	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/sentinel"
	"assure/pkg/testutil/containers"
)

// brokenHistoryStore fails every append, standing in for a history table
// fault mid-write.
type brokenHistoryStore struct{}

func (brokenHistoryStore) Append(context.Context, models.HistoryEntry) error {
	return errors.New("history table unavailable")
}

func (brokenHistoryStore) ListByKey(context.Context, models.Key) ([]models.HistoryEntry, error) {
	return nil, nil
}

func (brokenHistoryStore) Archive(context.Context, models.Key, id.HistoryID) (bool, error) {
	return false, nil
}

// SQLStoreTxSuite verifies that the assessment upsert and the history append
// commit or roll back as one unit against a real database.
type SQLStoreTxSuite struct {
	suite.Suite
	postgres    *containers.PostgresContainer
	assessments *assessmentstore.Postgres
	history     *historystore.Postgres
	key         models.Key
}

func TestSQLStoreTxSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SQLStoreTxSuite))
}

func (s *SQLStoreTxSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.assessments = assessmentstore.NewPostgres(s.postgres.DB)
	s.history = historystore.NewPostgres(s.postgres.DB)
}

func (s *SQLStoreTxSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "assessments", "assessment_history"))
	s.key = models.Key{
		ProjectID:    id.ProjectID(uuid.New()),
		StandardID:   id.StandardID(uuid.New()),
		ProfessionID: id.ProfessionID(uuid.New()),
	}
}

func (s *SQLStoreTxSuite) newService(history HistoryStore) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(s.assessments, history, &scriptedResolver{}, logger,
		WithStoreTx(NewSQLStoreTx(s.postgres.DB)),
	)
}

func (s *SQLStoreTxSuite) TestFailedHistoryAppendRollsBackUpsert() {
	ctx := context.Background()
	svc := s.newService(brokenHistoryStore{})

	_, err := svc.Submit(ctx, s.key, models.SubmitRequest{
		Status: "GREEN", Commentary: "on track", ChangedBy: "alice",
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))

	_, err = s.assessments.Find(ctx, s.key)
	s.ErrorIs(err, sentinel.ErrNotFound, "rolled-back upsert must leave no assessment row")

	var count int
	err = s.postgres.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM assessments").Scan(&count)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *SQLStoreTxSuite) TestSuccessfulWriteCommitsBothStores() {
	ctx := context.Background()
	svc := s.newService(s.history)

	a, err := svc.Submit(ctx, s.key, models.SubmitRequest{
		Status: "AMBER", Commentary: "watching", ChangedBy: "bob",
	})
	s.Require().NoError(err)

	got, err := s.assessments.Find(ctx, s.key)
	s.Require().NoError(err)
	s.Equal(a.ID, got.ID)

	entries, err := s.history.ListByKey(ctx, s.key)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("AMBER", entries[0].Changes.Status.To)
}

func (s *SQLStoreTxSuite) TestRollbackPreservesPreviousState() {
	ctx := context.Background()

	_, err := s.newService(s.history).Submit(ctx, s.key, models.SubmitRequest{
		Status: "GREEN", Commentary: "baseline", ChangedBy: "alice",
	})
	s.Require().NoError(err)

	_, err = s.newService(brokenHistoryStore{}).Submit(ctx, s.key, models.SubmitRequest{
		Status: "RED", Commentary: "should not land", ChangedBy: "mallory",
	})
	s.Require().Error(err)

	got, err := s.assessments.Find(ctx, s.key)
	s.Require().NoError(err)
	s.Equal(models.RatingGreen, got.Status, "failed write must not overwrite current state")
	s.Equal("alice", got.ChangedBy)

	entries, err := s.history.ListByKey(ctx, s.key)
	s.Require().NoError(err)
	s.Len(entries, 1, "audit trail unchanged by the rolled-back write")
}
