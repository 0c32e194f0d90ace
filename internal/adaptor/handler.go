package adaptor

import (
	"airline-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Company *CompanyHandler
	Flight  *FlightHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Company: NewCompanyHandler(service.Company, log),
		Flight:  NewFlightHandler(service.Flight, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
