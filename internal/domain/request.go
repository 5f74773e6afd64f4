package domain

import "time"

// DateFormat and SlotFormat are the wire formats for booking dates and
// time-of-day slots.
const (
	DateFormat = "2006-01-02"
	SlotFormat = "15:04"
)

// BookingRequest is the raw, untrusted input to the validator. Every field
// is a string exactly as it arrived; nothing here may be used until the
// validator has produced a NormalizedRequest from it.
type BookingRequest struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize string `json:"party_size"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// NormalizedRequest is a BookingRequest that passed validation: strings
// trimmed, date and slot parsed, party size an integer within bounds.
type NormalizedRequest struct {
	Date      time.Time
	Slot      string
	PartySize int
	Name      string
	Email     string
	Phone     string
}
