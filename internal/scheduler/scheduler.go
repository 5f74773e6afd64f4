package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCompleter interface {
	CompletePast(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically closes out confirmed bookings whose slot has
// passed, so the completed status is reached without any API call.
type Scheduler struct {
	bookingService bookingCompleter
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.bookingService.CompletePast(ctx)
	if err != nil {
		s.logger.Error("failed to complete past bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range completed {
		s.logger.Info("booking completed",
			logger.String("booking_id", b.ID),
			logger.Int64("table_id", b.TableID),
			logger.String("slot", b.Slot),
		)
	}
}
