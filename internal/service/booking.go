package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/service/ports"
	"github.com/stpnv0/TableBooker/internal/validation"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	store        ports.BookingStore
	availability *AvailabilityService
	validator    *validation.Validator
	notifier     ports.BookingNotifier
	logger       logger.Logger
}

func NewBookingService(
	store ports.BookingStore,
	availability *AvailabilityService,
	validator *validation.Validator,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		store:        store,
		availability: availability,
		validator:    validator,
		notifier:     notifier,
		logger:       logger,
	}
}

// Create validates the request, finds candidate tables and commits the first
// reservation the store accepts. The availability read is advisory: a
// candidate lost to a concurrent booking costs a retry against the next one,
// and only an exhausted candidate list fails the request.
func (s *BookingService) Create(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	norm, violations := s.validator.Validate(req, time.Now())
	if violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	candidates, err := s.availability.FindCandidateTables(ctx, norm.Date, norm.Slot, norm.PartySize, "")
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoAvailability
	}

	draft := domain.BookingDraft{
		ID:        uuid.New().String(),
		PartySize: norm.PartySize,
		Name:      norm.Name,
		Email:     norm.Email,
		Phone:     norm.Phone,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}

	for _, t := range candidates {
		booking, err := s.store.TryReserve(ctx, t.ID, norm.Date, norm.Slot, draft)
		if errors.Is(err, domain.ErrSlotTaken) {
			s.logger.Debug("reservation lost race, trying next table",
				logger.Int64("table_id", t.ID),
				logger.String("slot", norm.Slot),
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reserve table: %w", err)
		}

		s.logger.Info("booking created",
			logger.String("booking_id", booking.ID),
			logger.Int64("table_id", booking.TableID),
			logger.String("date", booking.Date.Format(domain.DateFormat)),
			logger.String("slot", booking.Slot),
			logger.Int("party_size", booking.PartySize),
		)

		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking)

		return booking, nil
	}

	return nil, domain.ErrNoAvailability
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.store.GetByID(ctx, id)
}

func (s *BookingService) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return s.store.ListByDate(ctx, date)
}

// Update applies a partial change. A status change goes through the
// transition table. A change of date, slot or party size re-runs availability
// for the target slot with the booking's own reservation excluded, then
// commits through the store's conditional update so the old slot is released
// only in the same step that secures the new one.
func (s *BookingService) Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != current.Status {
		if !current.Status.CanTransitionTo(*patch.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, *patch.Status)
		}
	}

	if !patch.ChangesSlot() {
		updated, err := s.store.UpdateFields(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	date := current.Date
	if patch.Date != nil {
		date = *patch.Date
	}
	slot := current.Slot
	if patch.Slot != nil {
		slot = *patch.Slot
	}
	partySize := current.PartySize
	if patch.PartySize != nil {
		partySize = *patch.PartySize
	}

	if violations := s.validator.ValidateSlotChange(date, partySize, time.Now()); violations != nil {
		return nil, &domain.ValidationError{Violations: violations}
	}

	candidates, err := s.availability.FindCandidateTables(ctx, date, slot, partySize, id)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoAvailability
	}

	patch.Date = &date
	patch.Slot = &slot
	patch.PartySize = &partySize

	for _, t := range candidates {
		tableID := t.ID
		patch.TableID = &tableID

		updated, err := s.store.UpdateFields(ctx, id, patch)
		if errors.Is(err, domain.ErrSlotTaken) {
			s.logger.Debug("re-booking lost race, trying next table",
				logger.Int64("table_id", tableID),
				logger.String("slot", slot),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info("booking moved",
			logger.String("booking_id", updated.ID),
			logger.Int64("table_id", updated.TableID),
			logger.String("date", updated.Date.Format(domain.DateFormat)),
			logger.String("slot", updated.Slot),
		)

		return updated, nil
	}

	return nil, domain.ErrNoAvailability
}

// Cancel is the customer-facing cancellation: a status transition that
// releases the slot, never a row removal.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(domain.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, domain.BookingStatusCancelled)
	}

	status := domain.BookingStatusCancelled
	updated, err := s.store.UpdateFields(ctx, id, domain.BookingPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", updated.ID),
		logger.Int64("table_id", updated.TableID),
		logger.String("slot", updated.Slot),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), updated)

	return updated, nil
}

// Delete is a hard removal for administrative cleanup only.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("booking deleted", logger.String("booking_id", id))
	return nil
}

// CompletePast marks confirmed bookings whose slot has passed as completed.
// Driven by the scheduler.
func (s *BookingService) CompletePast(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.store.CompletePast(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete past: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("past bookings completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}
