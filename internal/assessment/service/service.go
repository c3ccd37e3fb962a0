// Package service orchestrates the assessment write path: validate, merge
// into current state, derive the audit record. It is the only writer of the
// assessment and history stores.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	assessmentmetrics "assure/internal/assessment/metrics"
	"assure/internal/assessment/models"
	"assure/internal/assessment/resolver"
	id "assure/pkg/domain"
	dErrors "assure/pkg/domain-errors"
	"assure/pkg/platform/sentinel"
	"assure/pkg/requestcontext"
)

// Service is the single entry point for assessment reads and writes.
type Service struct {
	assessments AssessmentStore
	history     HistoryStore
	validator   *Validator
	tx          StoreTx
	keys        *keyedMutex
	logger      *slog.Logger
	metrics     *assessmentmetrics.Metrics
	feed        ChangeFeed
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithMetrics attaches prometheus metrics.
func WithMetrics(m *assessmentmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithChangeFeed attaches a best-effort history change feed.
func WithChangeFeed(feed ChangeFeed) Option {
	return func(s *Service) { s.feed = feed }
}

// WithStoreTx overrides the transactional wrapper (postgres wiring).
func WithStoreTx(tx StoreTx) Option {
	return func(s *Service) { s.tx = tx }
}

func New(assessments AssessmentStore, history HistoryStore, refs resolver.ReferenceResolver, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		assessments: assessments,
		history:     history,
		validator:   NewValidator(refs),
		tx:          NewMemoryStoreTx(),
		keys:        newKeyedMutex(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates and writes an assessment, deriving exactly one history
// entry per successful write. Same-key writers are serialized by an
// in-process keyed mutex, and the upsert plus the history append run inside
// one transactional unit, so the audit trail chains cleanly.
//
// Note a byte-identical resubmission still appends a history entry with
// identical from/to values; the log records writes, not differences.
func (s *Service) Submit(ctx context.Context, key models.Key, req models.SubmitRequest) (*models.Assessment, error) {
	start := time.Now()

	rating, err := s.validator.Validate(ctx, key, req)
	if err != nil {
		s.metrics.IncRejected()
		return nil, err
	}

	unlock := s.keys.lock(key)
	defer unlock()

	var written *models.Assessment
	var entry models.HistoryEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		previous, err := s.assessments.Find(txCtx, key)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load current assessment")
		}

		next := s.buildCandidate(ctx, key, rating, req, previous)
		if err := s.assessments.Upsert(txCtx, next); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write assessment")
		}

		entry = models.NewHistoryEntry(*next, previous)
		if err := s.history.Append(txCtx, entry); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record assessment history")
		}
		written = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncSubmitted()
	s.metrics.ObserveSubmit(time.Since(start).Seconds())
	if s.feed != nil {
		s.feed.PublishHistory(ctx, entry)
	}
	return written, nil
}

// buildCandidate applies the identity-assignment policy. Path parameters are
// authoritative for the composite key. On update the surface id is reused so
// the upsert replaces rather than duplicates, and an omitted actor inherits
// the previous attribution; on create an omitted actor becomes "Unknown".
func (s *Service) buildCandidate(ctx context.Context, key models.Key, rating models.Rating, req models.SubmitRequest, previous *models.Assessment) *models.Assessment {
	next := &models.Assessment{
		ProjectID:    key.ProjectID,
		StandardID:   key.StandardID,
		ProfessionID: key.ProfessionID,
		Status:       rating,
		Commentary:   req.Commentary,
		ChangedBy:    strings.TrimSpace(req.ChangedBy),
		LastUpdated:  requestcontext.Now(ctx),
	}
	if previous != nil {
		next.ID = previous.ID
		if next.ChangedBy == "" {
			next.ChangedBy = previous.ChangedBy
		}
	} else {
		next.ID = id.AssessmentID(uuid.New())
		if next.ChangedBy == "" {
			next.ChangedBy = models.UnknownActor
		}
	}
	return next
}

// Get returns the current assessment for the key, or CodeNotFound.
func (s *Service) Get(ctx context.Context, key models.Key) (*models.Assessment, error) {
	a, err := s.assessments.Find(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "assessment not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load assessment")
	}
	return a, nil
}

// History returns the non-archived audit trail for the key, newest first.
// A store fault degrades to an empty trail: this is a display-only read and
// must not fail the page rendering it.
func (s *Service) History(ctx context.Context, key models.Key) []models.HistoryEntry {
	entries, err := s.history.ListByKey(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "history read failed, returning empty trail",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		return []models.HistoryEntry{}
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries
}

// ArchiveHistory hides one history entry without deleting it. Returns true
// iff a matching non-archived entry was archived by this call.
func (s *Service) ArchiveHistory(ctx context.Context, key models.Key, historyID id.HistoryID) (bool, error) {
	archived, err := s.history.Archive(ctx, key, historyID)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to archive history entry")
	}
	if archived {
		s.metrics.IncHistoryArchived()
	}
	return archived, nil
}
