package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type AvailabilitySvc interface {
	Check(ctx context.Context, date time.Time, slot string, partySize int) (*domain.Availability, error)
}

type TableSvc interface {
	List(ctx context.Context) ([]*domain.Table, error)
	SetAvailability(ctx context.Context, id int64, available bool) (*domain.Table, error)
}

type Handler struct {
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	tableService        TableSvc
}

func NewHandler(bookingService BookingSvc, availabilityService AvailabilitySvc, tableService TableSvc) *Handler {
	return &Handler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
		tableService:        tableService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), req.ToBookingRequest())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	date, err := time.ParseInLocation(domain.DateFormat, c.Query("date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	bookings, err := h.bookingService.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch, err := toPatch(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Availability

func (h *Handler) CheckAvailability(c *ginext.Context) {
	date, err := time.ParseInLocation(domain.DateFormat, c.Query("date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	slotTime, err := time.Parse(domain.SlotFormat, c.Query("time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid time, expected HH:MM"})
		return
	}

	guests, err := strconv.Atoi(c.Query("guests"))
	if err != nil || guests < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests, expected a positive integer"})
		return
	}

	availability, err := h.availabilityService.Check(
		c.Request.Context(), date, slotTime.Format(domain.SlotFormat), guests,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

// Tables

func (h *Handler) ListTables(c *ginext.Context) {
	tables, err := h.tableService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		resp = append(resp, dto.ToTableResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetTableAvailability(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid table id"})
		return
	}

	var req dto.SetTableAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	table, err := h.tableService.SetAvailability(c.Request.Context(), id, *req.Available)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponse(table))
}

func toPatch(req dto.UpdateBookingRequest) (domain.BookingPatch, error) {
	var patch domain.BookingPatch

	if req.Date != nil {
		d, err := time.ParseInLocation(domain.DateFormat, *req.Date, time.UTC)
		if err != nil {
			return patch, errors.New("invalid date, expected YYYY-MM-DD")
		}
		patch.Date = &d
	}
	if req.Time != nil {
		t, err := time.Parse(domain.SlotFormat, *req.Time)
		if err != nil {
			return patch, errors.New("invalid time, expected HH:MM")
		}
		slot := t.Format(domain.SlotFormat)
		patch.Slot = &slot
	}
	patch.PartySize = req.PartySize
	patch.Name = req.Name
	patch.Email = req.Email
	patch.Phone = req.Phone

	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		switch status {
		case domain.BookingStatusPending, domain.BookingStatusConfirmed,
			domain.BookingStatusCancelled, domain.BookingStatusCompleted,
			domain.BookingStatusNoShow:
			patch.Status = &status
		default:
			return patch, errors.New("unknown booking status")
		}
	}

	return patch, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:      err.Error(),
			Violations: validationErr.Violations,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrTableNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailability),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
