package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// ActiveStatuses are the statuses that hold a table slot.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// transitions is the only place legal status changes are defined.
// cancelled, completed and no_show are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID          string        `json:"id"`
	TableID     int64         `json:"table_id"`
	Date        time.Time     `json:"date"`
	Slot        string        `json:"slot"`
	PartySize   int           `json:"party_size"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}

// BookingDraft carries the fields of a booking that are known before the
// store has reserved a table for it.
type BookingDraft struct {
	ID        string
	PartySize int
	Name      string
	Email     string
	Phone     string
	Status    BookingStatus
	CreatedAt time.Time
}

// BookingPatch is a partial update; nil fields are left unchanged.
// Date, Slot and PartySize affect the reserved slot and force the service
// to re-run availability before committing.
type BookingPatch struct {
	Date      *time.Time
	Slot      *string
	PartySize *int
	Name      *string
	Email     *string
	Phone     *string
	Status    *BookingStatus
	TableID   *int64
}

func (p BookingPatch) ChangesSlot() bool {
	return p.Date != nil || p.Slot != nil || p.PartySize != nil
}
