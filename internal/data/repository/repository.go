package repository

import (
	"airline-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Company CompanyRepository
	Flight  FlightRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Company: NewCompanyRepository(db, log),
		Flight:  NewFlightRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
