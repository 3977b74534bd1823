package entity

import (
	"time"

	domainerrors "safemap/internal/domain/errors"
)

// SubmissionKind tags the variant of a user-proposed fact.
type SubmissionKind string

const (
	SubmissionKindTip  SubmissionKind = "tip"
	SubmissionKindPin  SubmissionKind = "pin"
	SubmissionKindZone SubmissionKind = "zone"
)

func (k SubmissionKind) IsValid() bool {
	switch k {
	case SubmissionKindTip, SubmissionKindPin, SubmissionKindZone:
		return true
	default:
		return false
	}
}

// SubmissionStatus is the moderation state of a submission.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Only pending -> approved and pending -> rejected exist.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	return s == SubmissionStatusPending &&
		(next == SubmissionStatusApproved || next == SubmissionStatusRejected)
}

// TransitionTo returns next when the move is allowed, ErrInvalidTransition otherwise.
func (s SubmissionStatus) TransitionTo(next SubmissionStatus) (SubmissionStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, domainerrors.ErrInvalidTransition.WithDetails(string(s) + " -> " + string(next))
	}

	return next, nil
}

// Submission is a user-proposed tip, pin or zone awaiting or past review.
//
// Title holds the tip/pin title or the zone label; Summary holds the tip/pin
// summary or the zone reason. Geometry is the datastore text form
// (EWKT point or WKT polygon), empty when the submission carries none.
type Submission struct {
	ID          int64
	CityID      int64
	Kind        SubmissionKind
	SubmitterID *string // nil for guest pins
	GuestName   string
	Title       string
	Summary     string
	Details     string
	Category    TipCategory // tip only
	PinType     PinType     // pin only
	Level       SafetyLevel // zone only
	Geometry    string
	Status      SubmissionStatus
	ReviewedBy  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasGeometry reports whether the submission carries stored geometry.
func (s *Submission) HasGeometry() bool {
	return s.Geometry != ""
}

// IsGuest reports whether the submission was made without an identity.
func (s *Submission) IsGuest() bool {
	return s.SubmitterID == nil || *s.SubmitterID == ""
}
