package dto

import (
	"time"

	"github.com/stpnv0/TableBooker/internal/domain"
)

type BookingResponse struct {
	ID          string `json:"id"`
	TableID     int64  `json:"table_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	PartySize   int    `json:"party_size"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	CancelledAt string `json:"cancelled_at,omitempty"`
}

type TableResponse struct {
	ID        int64  `json:"id"`
	Capacity  int    `json:"capacity"`
	Location  string `json:"location"`
	Available bool   `json:"available"`
}

type SlotSummaryResponse struct {
	TotalTables     int `json:"total_tables"`
	OccupiedTables  int `json:"occupied_tables"`
	AvailableTables int `json:"available_tables"`
}

type AvailabilityResponse struct {
	CandidateTables []TableResponse     `json:"candidate_tables"`
	SlotSummary     SlotSummaryResponse `json:"slot_summary"`
}

type ErrorResponse struct {
	Error      string             `json:"error"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		TableID:   b.TableID,
		Date:      b.Date.Format(domain.DateFormat),
		Time:      b.Slot,
		PartySize: b.PartySize,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		resp.CancelledAt = b.CancelledAt.Format(time.RFC3339)
	}
	return resp
}

func ToTableResponse(t *domain.Table) TableResponse {
	return TableResponse{
		ID:        t.ID,
		Capacity:  t.Capacity,
		Location:  string(t.Location),
		Available: t.Available,
	}
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	tables := make([]TableResponse, 0, len(a.CandidateTables))
	for _, t := range a.CandidateTables {
		tables = append(tables, ToTableResponse(t))
	}

	return AvailabilityResponse{
		CandidateTables: tables,
		SlotSummary: SlotSummaryResponse{
			TotalTables:     a.Summary.TotalTables,
			OccupiedTables:  a.Summary.OccupiedTables,
			AvailableTables: a.Summary.AvailableTables,
		},
	}
}
