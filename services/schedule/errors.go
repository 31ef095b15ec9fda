package schedule

import (
	"errors"

	"medportal/models"
)

var (
	// ErrReasonRequired is returned when a confirmed absence over conflicting
	// consultations carries no cancellation reason.
	ErrReasonRequired = errors.New("cancellation reason is required")

	// ErrInvalidAbsenceType is returned for a type outside the known list.
	ErrInvalidAbsenceType = errors.New("invalid absence type")

	// ErrInvalidRange is returned when the absence interval is malformed
	// (bad dates, end before start, or a reversed single-day time window).
	ErrInvalidRange = errors.New("invalid absence interval")

	// ErrNoPendingMove is returned when confirm or cancel is called without a
	// dropped move in the session.
	ErrNoPendingMove = errors.New("no pending move")
)

// ConflictError carries the consultations that block an unconfirmed absence.
type ConflictError struct {
	Conflicts []models.Appointment
}

func (e *ConflictError) Error() string {
	return "absence conflicts with existing appointments"
}
