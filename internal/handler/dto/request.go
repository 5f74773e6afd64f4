package dto

import (
	"encoding/json"

	"github.com/stpnv0/TableBooker/internal/domain"
)

// CreateBookingRequest deliberately has no binding tags: the booking
// validator owns the rules and reports every violation at once, which gin's
// first-failure binding cannot do. PartySize is a json.Number so both form
// wire formats ("4" and 4) arrive intact.
type CreateBookingRequest struct {
	Date      string      `json:"date"`
	Time      string      `json:"time"`
	PartySize json.Number `json:"party_size"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
}

func (r CreateBookingRequest) ToBookingRequest() domain.BookingRequest {
	return domain.BookingRequest{
		Date:      r.Date,
		Time:      r.Time,
		PartySize: r.PartySize.String(),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

type UpdateBookingRequest struct {
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	PartySize *int    `json:"party_size"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status"`
}

type SetTableAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
