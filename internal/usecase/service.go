package usecase

import (
	"airline-booking/internal/data/repository"
	"airline-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Company CompanyService
	Flight  FlightService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Company: NewCompanyService(repo, log),
		Flight:  NewFlightService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
