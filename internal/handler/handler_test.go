package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stpnv0/TableBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/TableBooker/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockAvailabilitySvc, *hmocks.MockTableSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	tableSvc := hmocks.NewMockTableSvc(t)

	h := NewHandler(bookingSvc, availabilitySvc, tableSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.UpdateBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)
		api.GET("/availability", h.CheckAvailability)
		api.GET("/tables", h.ListTables)
		api.PATCH("/tables/:id/availability", h.SetTableAvailability)
	}

	return bookingSvc, availabilitySvc, tableSvc, r
}

func sampleBooking() *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		ID:        uuid.New().String(),
		TableID:   3,
		Date:      time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		Slot:      "19:00",
		PartySize: 4,
		Name:      "Alice",
		Email:     "alice@example.com",
		Phone:     "+15550100",
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking()
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Date:      "2025-06-11",
		Time:      "19:00",
		PartySize: "4",
		Name:      "Alice",
		Email:     "alice@example.com",
		Phone:     "+15550100",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2025-06-11", resp.Date)
}

func TestHandler_CreateBooking_NumericPartySize(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(req domain.BookingRequest) bool {
			return req.PartySize == "4"
		})).
		Return(sampleBooking(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		bytes.NewReader([]byte(`{"date":"2025-06-11","time":"19:00","party_size":4,"name":"Alice","email":"alice@example.com","phone":"+15550100"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateBooking_ValidationViolations(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, &domain.ValidationError{
		Violations: []domain.Violation{
			{Kind: domain.ViolationPastDate, Field: "date"},
			{Kind: domain.ViolationInvalidEmail, Field: "email"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Violations, 2)
	assert.Equal(t, domain.ViolationPastDate, resp.Violations[0].Kind)
}

func TestHandler_CreateBooking_NoAvailability(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrNoAvailability)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	bookingSvc.EXPECT().ListByDate(mock.Anything, date).
		Return([]*domain.Booking{sampleBooking(), sampleBooking()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?date=2025-06-11", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListBookings_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?date=tomorrow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Name = "Bob"
	bookingSvc.EXPECT().
		Update(mock.Anything, booking.ID, mock.MatchedBy(func(p domain.BookingPatch) bool {
			return p.Name != nil && *p.Name == "Bob" && p.Slot == nil
		})).
		Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+booking.ID,
		bytes.NewReader([]byte(`{"name":"Bob"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bob", resp.Name)
}

func TestHandler_UpdateBooking_UnknownStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+uuid.New().String(),
		bytes.NewReader([]byte(`{"status":"teleported"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBooking_InvalidTransition(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Update(mock.Anything, id, mock.Anything).
		Return(nil, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+id,
		bytes.NewReader([]byte(`{"status":"confirmed"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := sampleBooking()
	booking.Status = domain.BookingStatusCancelled
	cancelledAt := time.Now().UTC()
	booking.CancelledAt = &cancelledAt

	bookingSvc.EXPECT().Cancel(mock.Anything, booking.ID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
	assert.NotEmpty(t, resp.CancelledAt)
}

func TestHandler_DeleteBooking(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_UnexpectedError(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, id).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

// --- Availability ---

func TestHandler_CheckAvailability(t *testing.T) {
	_, availabilitySvc, _, r := setupRouter(t)

	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	availabilitySvc.EXPECT().Check(mock.Anything, date, "19:00", 4).
		Return(&domain.Availability{
			CandidateTables: []*domain.Table{{ID: 2, Capacity: 4, Location: domain.TableLocationIndoor, Available: true}},
			Summary:         domain.SlotSummary{TotalTables: 15, OccupiedTables: 3, AvailableTables: 12},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-06-11&time=19:00&guests=4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.CandidateTables, 1)
	assert.Equal(t, int64(2), resp.CandidateTables[0].ID)
	assert.Equal(t, 12, resp.SlotSummary.AvailableTables)
}

func TestHandler_CheckAvailability_BadParams(t *testing.T) {
	_, _, _, r := setupRouter(t)

	for _, query := range []string{
		"date=2025-06-11&time=19:00",          // guests missing
		"date=2025-06-11&time=19:00&guests=0", // guests below 1
		"date=2025-06-11&time=7pm&guests=4",   // bad time
		"date=11.06.2025&time=19:00&guests=4", // bad date
		"time=19:00&guests=4",                 // date missing
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/availability?"+query, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

// --- Tables ---

func TestHandler_ListTables(t *testing.T) {
	_, _, tableSvc, r := setupRouter(t)

	tableSvc.EXPECT().List(mock.Anything).Return([]*domain.Table{
		{ID: 1, Capacity: 2, Location: domain.TableLocationIndoor, Available: true},
		{ID: 2, Capacity: 4, Location: domain.TableLocationTerrace, Available: false},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tables", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "terrace", resp[1].Location)
}

func TestHandler_SetTableAvailability(t *testing.T) {
	_, _, tableSvc, r := setupRouter(t)

	tableSvc.EXPECT().SetAvailability(mock.Anything, int64(2), false).
		Return(&domain.Table{ID: 2, Capacity: 4, Available: false}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/tables/2/availability",
		bytes.NewReader([]byte(`{"available":false}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetTableAvailability_MissingBody(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/tables/2/availability",
		bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
