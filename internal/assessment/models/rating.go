package models

import (
	"strings"

	dErrors "assure/pkg/domain-errors"
)

// Rating is the closed set of assurance ratings an assessment can hold.
// Invariant: a persisted assessment's status is always one of these values.
//
// Construct via ParseRating at trust boundaries; direct casting bypasses
// validation.
type Rating string

const (
	RatingRed   Rating = "RED"
	RatingAmber Rating = "AMBER"
	RatingGreen Rating = "GREEN"
)

// ratingOrder doubles as the membership set and the canonical listing order
// for error messages. Clients pattern-match on the message text, so the
// order and literals are part of the contract.
var ratingOrder = []Rating{RatingRed, RatingAmber, RatingGreen}

// AcceptedRatings returns the literal accepted values, comma separated, for
// embedding in bad-request messages.
func AcceptedRatings() string {
	parts := make([]string, len(ratingOrder))
	for i, r := range ratingOrder {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// ParseRating constructs a Rating from external input, case-insensitively.
// The returned value is the canonical upper-case form.
func ParseRating(s string) (Rating, error) {
	candidate := Rating(strings.ToUpper(strings.TrimSpace(s)))
	for _, r := range ratingOrder {
		if candidate == r {
			return r, nil
		}
	}
	return "", dErrors.Newf(dErrors.CodeBadRequest, "status must be one of: %s", AcceptedRatings())
}

// IsValid checks membership in the rating set.
func (r Rating) IsValid() bool {
	for _, v := range ratingOrder {
		if r == v {
			return true
		}
	}
	return false
}

func (r Rating) String() string { return string(r) }
