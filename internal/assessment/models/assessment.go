package models

import (
	"time"

	id "assure/pkg/domain"
)

// UnknownActor is stamped onto a fresh assessment when the caller omits
// changedBy. Updates inherit the previous actor instead (see service).
const UnknownActor = "Unknown"

// Key is the composite identity of an assessment and its history stream.
type Key struct {
	ProjectID    id.ProjectID
	StandardID   id.StandardID
	ProfessionID id.ProfessionID
}

// Assessment is the current rating of one service standard for one
// profession on one project.
//
// Invariants:
//   - at most one assessment exists per Key
//   - Status is a member of the rating set
//   - ChangedBy is never empty once persisted
//
// Lifecycle: created on first write for a key, mutated in place on every
// later write, never deleted by this subsystem.
type Assessment struct {
	ID           id.AssessmentID `json:"id"`
	ProjectID    id.ProjectID    `json:"project_id"`
	StandardID   id.StandardID   `json:"standard_id"`
	ProfessionID id.ProfessionID `json:"profession_id"`
	Status       Rating          `json:"status"`
	Commentary   string          `json:"commentary"`
	ChangedBy    string          `json:"changed_by"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// Key returns the composite identity of the assessment.
func (a *Assessment) Key() Key {
	return Key{ProjectID: a.ProjectID, StandardID: a.StandardID, ProfessionID: a.ProfessionID}
}

// SubmitRequest is the caller-supplied body for a submit. Path parameters
// carry the composite key; any identity in the body would be overwritten.
type SubmitRequest struct {
	Status     string `json:"status"`
	Commentary string `json:"commentary"`
	ChangedBy  string `json:"changed_by"`
}
