package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrTableNotFound   = errors.New("table not found")
)

var (
	// ErrNoAvailability: no table satisfies capacity and slot constraints,
	// or every candidate was lost to a concurrent booking.
	ErrNoAvailability = errors.New("no tables available for the requested slot")

	// ErrSlotTaken is the store-level conflict on a single (table, date, slot)
	// reservation attempt. The booking service retries it against the next
	// candidate table and never surfaces it to callers.
	ErrSlotTaken = errors.New("table already booked for this slot")

	ErrInvalidTransition = errors.New("invalid booking status transition")
)

var ErrValidation = errors.New("validation error")

type ViolationKind string

const (
	ViolationMissingField     ViolationKind = "missing_field"
	ViolationInvalidPartySize ViolationKind = "invalid_party_size"
	ViolationPastDate         ViolationKind = "past_date"
	ViolationInvalidEmail     ViolationKind = "invalid_email"
)

type Violation struct {
	Kind  ViolationKind `json:"kind"`
	Field string        `json:"field"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Field)
}

// ValidationError carries every rule violated by a request, in the order the
// rules were checked, so callers can report them all in one response.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrValidation) match, so the handler can map the
// whole class with one branch.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
