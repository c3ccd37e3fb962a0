package service

import (
	"context"

	"assure/internal/assessment/models"
	id "assure/pkg/domain"
)

// AssessmentStore is the current-state store consumed by the service.
// Find returns sentinel.ErrNotFound for absent keys; Upsert replaces by
// composite key and only fails on storage faults.
type AssessmentStore interface {
	Find(ctx context.Context, key models.Key) (*models.Assessment, error)
	Upsert(ctx context.Context, a *models.Assessment) error
}

// HistoryStore is the append-only audit log consumed by the service.
type HistoryStore interface {
	Append(ctx context.Context, entry models.HistoryEntry) error
	ListByKey(ctx context.Context, key models.Key) ([]models.HistoryEntry, error)
	Archive(ctx context.Context, key models.Key, historyID id.HistoryID) (bool, error)
}

// ChangeFeed receives every appended history entry, best-effort.
type ChangeFeed interface {
	PublishHistory(ctx context.Context, entry models.HistoryEntry)
}

// StoreTx runs a function inside one transactional unit so the assessment
// upsert and the history append commit or fail together.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
