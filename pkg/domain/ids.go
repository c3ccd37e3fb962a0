// Package domain holds shared domain primitives: typed identifiers and
// parsing helpers that enforce validity at trust boundaries.
package domain

import (
	"github.com/google/uuid"

	dErrors "assure/pkg/domain-errors"
)

// Typed UUID identifiers. Distinct types keep a ProjectID from ever being
// passed where a ProfessionID is expected; the compiler enforces it.
type (
	ProjectID         uuid.UUID
	StandardID        uuid.UUID
	ProfessionID      uuid.UUID
	AssessmentID      uuid.UUID
	HistoryID         uuid.UUID
	DeliveryGroupID   uuid.UUID
	DeliveryPartnerID uuid.UUID
)

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s id is required", kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s id is not a valid UUID", kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s id cannot be the nil UUID", kind)
	}
	return u, nil
}

// ParseProjectID constructs a ProjectID from external input.
func ParseProjectID(s string) (ProjectID, error) {
	u, err := parseUUID(s, "project")
	return ProjectID(u), err
}

// ParseStandardID constructs a StandardID from external input.
func ParseStandardID(s string) (StandardID, error) {
	u, err := parseUUID(s, "standard")
	return StandardID(u), err
}

// ParseProfessionID constructs a ProfessionID from external input.
func ParseProfessionID(s string) (ProfessionID, error) {
	u, err := parseUUID(s, "profession")
	return ProfessionID(u), err
}

// ParseHistoryID constructs a HistoryID from external input.
func ParseHistoryID(s string) (HistoryID, error) {
	u, err := parseUUID(s, "history entry")
	return HistoryID(u), err
}

// ParseDeliveryGroupID constructs a DeliveryGroupID from external input.
func ParseDeliveryGroupID(s string) (DeliveryGroupID, error) {
	u, err := parseUUID(s, "delivery group")
	return DeliveryGroupID(u), err
}

// ParseDeliveryPartnerID constructs a DeliveryPartnerID from external input.
func ParseDeliveryPartnerID(s string) (DeliveryPartnerID, error) {
	u, err := parseUUID(s, "delivery partner")
	return DeliveryPartnerID(u), err
}

func (id ProjectID) String() string         { return uuid.UUID(id).String() }
func (id StandardID) String() string        { return uuid.UUID(id).String() }
func (id ProfessionID) String() string      { return uuid.UUID(id).String() }
func (id AssessmentID) String() string      { return uuid.UUID(id).String() }
func (id HistoryID) String() string         { return uuid.UUID(id).String() }
func (id DeliveryGroupID) String() string   { return uuid.UUID(id).String() }
func (id DeliveryPartnerID) String() string { return uuid.UUID(id).String() }

func (id ProjectID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id StandardID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id ProfessionID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AssessmentID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id HistoryID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }

// MarshalText/UnmarshalText keep typed IDs JSON-friendly as UUID strings.

func (id ProjectID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id StandardID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id ProfessionID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id AssessmentID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id HistoryID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id DeliveryGroupID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
func (id DeliveryPartnerID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ProjectID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = ProjectID(u)
	return nil
}

func (id *StandardID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = StandardID(u)
	return nil
}

func (id *ProfessionID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = ProfessionID(u)
	return nil
}

func (id *AssessmentID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = AssessmentID(u)
	return nil
}

func (id *HistoryID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = HistoryID(u)
	return nil
}

func (id *DeliveryGroupID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = DeliveryGroupID(u)
	return nil
}

func (id *DeliveryPartnerID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = DeliveryPartnerID(u)
	return nil
}
