package booking

import (
	"errors"
	"fmt"
)

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrInvalidBooking = errors.New("invalid booking")

var ErrInvalidInterval = errors.New("end must be after start")

var ErrResourceUnavailable = errors.New("resource unavailable")

var ErrResourceConflict = errors.New("resource already booked for this period")

var ErrAlreadyCancelled = errors.New("booking already cancelled")

var ErrWindowExpired = errors.New("cancellation window expired")

var ErrBookingChanged = errors.New("booking was modified concurrently")

// ConflictError tells the caller which resource clashed.
type ConflictError struct {
	Kind       ResourceKind
	ResourceID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s is already booked for this period", e.Kind, e.ResourceID)
}

func (e *ConflictError) Unwrap() error {
	return ErrResourceConflict
}
