package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
)

// BookingStore is the durable record of bookings and the source of truth for
// conflict detection. TryReserve and slot-changing UpdateFields are atomic:
// they succeed only if no active booking holds the target
// (table, date, slot) and fail with domain.ErrSlotTaken otherwise.
type BookingStore interface {
	TryReserve(ctx context.Context, tableID int64, date time.Time, slot string, draft domain.BookingDraft) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ActiveForSlot(ctx context.Context, date time.Time, slot string) ([]*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	UpdateFields(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error

	// CompletePast flips confirmed bookings whose slot ended before now to
	// completed and returns them.
	CompletePast(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
