// Package validation checks booking requests before any of their fields are
// trusted. A request either normalizes cleanly or fails with the full list
// of violated rules; callers never see a partial report.
package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stpnv0/TableBooker/internal/domain"
)

// DefaultMaxPartySize bounds a single-table party.
const DefaultMaxPartySize = 10

var emailCheck = validator.New(validator.WithRequiredStructEnabled())

type Validator struct {
	maxPartySize int
}

func New(maxPartySize int) *Validator {
	if maxPartySize <= 0 {
		maxPartySize = DefaultMaxPartySize
	}
	return &Validator{maxPartySize: maxPartySize}
}

// Validate normalizes req against the server clock now. It returns either a
// normalized request or every violation found, in rule order. It never
// returns both.
func (v *Validator) Validate(req domain.BookingRequest, now time.Time) (*domain.NormalizedRequest, []domain.Violation) {
	var violations []domain.Violation

	date := strings.TrimSpace(req.Date)
	slot := strings.TrimSpace(req.Time)
	partySize := strings.TrimSpace(req.PartySize)
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	for _, f := range []struct {
		name  string
		value string
	}{
		{"date", date},
		{"time", slot},
		{"party_size", partySize},
		{"name", name},
		{"email", email},
		{"phone", phone},
	} {
		if f.value == "" {
			violations = append(violations, domain.Violation{Kind: domain.ViolationMissingField, Field: f.name})
		}
	}

	norm := &domain.NormalizedRequest{Name: name, Email: email, Phone: phone}

	if partySize != "" {
		n, err := strconv.Atoi(partySize)
		if err != nil || n < 1 || n > v.maxPartySize {
			violations = append(violations, domain.Violation{Kind: domain.ViolationInvalidPartySize, Field: "party_size"})
		} else {
			norm.PartySize = n
		}
	}

	if date != "" {
		d, err := time.ParseInLocation(domain.DateFormat, date, time.UTC)
		if err != nil {
			// unparseable dates fail the same rule as past ones
			violations = append(violations, domain.Violation{Kind: domain.ViolationPastDate, Field: "date"})
		} else if d.Before(today(now)) {
			violations = append(violations, domain.Violation{Kind: domain.ViolationPastDate, Field: "date"})
		} else {
			norm.Date = d
		}
	}

	if slot != "" {
		t, err := time.Parse(domain.SlotFormat, slot)
		if err != nil {
			violations = append(violations, domain.Violation{Kind: domain.ViolationMissingField, Field: "time"})
		} else {
			norm.Slot = t.Format(domain.SlotFormat)
		}
	}

	if email != "" {
		if err := emailCheck.Var(email, "email"); err != nil {
			violations = append(violations, domain.Violation{Kind: domain.ViolationInvalidEmail, Field: "email"})
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}

	return norm, nil
}

// ValidateSlotChange re-checks the bounds a slot-affecting update can break:
// party size within limits and target date not in the past.
func (v *Validator) ValidateSlotChange(date time.Time, partySize int, now time.Time) []domain.Violation {
	var violations []domain.Violation
	if partySize < 1 || partySize > v.maxPartySize {
		violations = append(violations, domain.Violation{Kind: domain.ViolationInvalidPartySize, Field: "party_size"})
	}
	if date.Before(today(now)) {
		violations = append(violations, domain.Violation{Kind: domain.ViolationPastDate, Field: "date"})
	}
	return violations
}

// today truncates the server clock to a UTC calendar date, comparable with
// parsed request dates.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
