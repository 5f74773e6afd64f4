package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusPending, BookingStatusNoShow, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusNoShow, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusNoShow, BookingStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatus_Active(t *testing.T) {
	assert.True(t, BookingStatusPending.Active())
	assert.True(t, BookingStatusConfirmed.Active())
	assert.False(t, BookingStatusCancelled.Active())
	assert.False(t, BookingStatusCompleted.Active())
	assert.False(t, BookingStatusNoShow.Active())
}

func TestBookingPatch_ChangesSlot(t *testing.T) {
	size := 4
	slot := "19:00"
	name := "Alice"

	assert.False(t, BookingPatch{}.ChangesSlot())
	assert.False(t, BookingPatch{Name: &name}.ChangesSlot())
	assert.True(t, BookingPatch{Slot: &slot}.ChangesSlot())
	assert.True(t, BookingPatch{PartySize: &size}.ChangesSlot())
}

func TestValidationError_Is(t *testing.T) {
	err := &ValidationError{Violations: []Violation{{Kind: ViolationPastDate, Field: "date"}}}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrBookingNotFound))
	assert.Contains(t, err.Error(), "past_date")
}
