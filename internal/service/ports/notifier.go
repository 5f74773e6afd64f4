package ports

import (
	"context"

	"github.com/stpnv0/TableBooker/internal/domain"
)

// BookingNotifier tells front-of-house about booking changes. Implementations
// are best-effort; the booking service never fails a request on a
// notification error.
type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking)
}
