package response

import (
	"airline-booking/internal/data/entity"
	"airline-booking/pkg/utils"
)

// BookingResponse renders optional fields as empty strings, never null.
type BookingResponse struct {
	ID            int64  `json:"id"`
	UserID        string `json:"user_id"`
	FlightID      string `json:"flight_id"`
	FlightName    string `json:"flight_name"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureDate string `json:"departure_date"`
	ArrivalDate   string `json:"arrival_date"`
	Price         string `json:"price"`
	CompanyID     int64  `json:"company_id"`
	Status        string `json:"status"`
	PaymentID     string `json:"payment_id"`
	PaidAt        string `json:"paid_at"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID,
		UserID:        booking.UserID,
		FlightID:      booking.FlightID,
		FlightName:    booking.FlightName,
		Origin:        booking.Origin,
		Destination:   booking.Destination,
		DepartureTime: booking.DepartureTime,
		ArrivalTime:   booking.ArrivalTime,
		DepartureDate: booking.DepartureDate,
		ArrivalDate:   booking.ArrivalDate,
		Price:         booking.Price,
		CompanyID:     booking.CompanyID,
		Status:        string(booking.Status),
		CreatedAt:     utils.FormatTimestamp(booking.CreatedAt),
		UpdatedAt:     utils.FormatTimestamp(booking.UpdatedAt),
	}
	if booking.PaymentID != nil {
		resp.PaymentID = *booking.PaymentID
	}
	if booking.PaidAt != nil {
		resp.PaidAt = *booking.PaidAt
	}
	return resp
}
