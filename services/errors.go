package services

import (
	"errors"
	"fmt"

	"grooming-service-server/models"
)

var (
	// ErrBookingNotFound is returned when a booking id does not resolve.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrRatingNotFound is returned when a rating id does not resolve.
	ErrRatingNotFound = errors.New("rating not found")
	// ErrDuplicateRating is returned when the booking already has a rating
	// in pending or approved state.
	ErrDuplicateRating = errors.New("a rating for this booking already exists")
	// ErrNotificationNotFound is returned when a notification id does not resolve.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrPromoNotFound is returned when a promo id does not resolve.
	ErrPromoNotFound = errors.New("promo not found")
)

// ValidationError describes a missing or malformed input field. It is
// recoverable by resubmission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidStateError is returned when an operation is attempted on a booking
// whose current status does not permit it.
type InvalidStateError struct {
	Status models.BookingStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("booking cannot be cancelled. Status: %s", e.Status)
}

// WindowExpiredError is returned when a cancellation arrives after the
// self-service window has closed.
type WindowExpiredError struct {
	ElapsedMinutes int
	WindowMinutes  int
}

func (e *WindowExpiredError) Error() string {
	return fmt.Sprintf("booking can only be cancelled within %d minutes of ordering (%d minutes elapsed)",
		e.WindowMinutes, e.ElapsedMinutes)
}

// InvalidTransitionError is returned when a status update does not follow
// the booking state machine.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}
