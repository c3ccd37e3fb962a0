package models

import (
	"time"

	"github.com/google/uuid"

	id "assure/pkg/domain"
)

// FieldChange records one tracked field's transition. From is the empty
// string for the very first write against a key, never absent.
type FieldChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Changes holds the field-level diff of one assessment write. Exactly the
// mutable tracked fields appear here.
type Changes struct {
	Status     FieldChange `json:"status"`
	Commentary FieldChange `json:"commentary"`
}

// HistoryEntry is the immutable audit record of one assessment change.
// Append-only: once written, only Archived may flip.
type HistoryEntry struct {
	ID           id.HistoryID    `json:"id"`
	ProjectID    id.ProjectID    `json:"project_id"`
	StandardID   id.StandardID   `json:"standard_id"`
	ProfessionID id.ProfessionID `json:"profession_id"`
	ChangedBy    string          `json:"changed_by"`
	Timestamp    time.Time       `json:"timestamp"`
	Changes      Changes         `json:"changes"`
	Archived     bool            `json:"archived"`
}

// NewHistoryEntry derives the audit record for a write. The actor and
// timestamp come from the written assessment itself, tying the audit trail
// to whoever the write was attributed to. previous is nil on first write.
func NewHistoryEntry(next Assessment, previous *Assessment) HistoryEntry {
	var fromStatus, fromCommentary string
	if previous != nil {
		fromStatus = string(previous.Status)
		fromCommentary = previous.Commentary
	}
	return HistoryEntry{
		ID:           id.HistoryID(uuid.New()),
		ProjectID:    next.ProjectID,
		StandardID:   next.StandardID,
		ProfessionID: next.ProfessionID,
		ChangedBy:    next.ChangedBy,
		Timestamp:    next.LastUpdated,
		Changes: Changes{
			Status:     FieldChange{From: fromStatus, To: string(next.Status)},
			Commentary: FieldChange{From: fromCommentary, To: next.Commentary},
		},
	}
}

// Key returns the composite key the entry belongs to.
func (e *HistoryEntry) Key() Key {
	return Key{ProjectID: e.ProjectID, StandardID: e.StandardID, ProfessionID: e.ProfessionID}
}
