package usecase

import (
	"context"
	"fmt"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/internal/dto/response"

	"go.uber.org/zap"
)

type BookingService interface {
	GetBookings(ctx context.Context, userID *string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID int64) (*response.BookingResponse, error)
	GetBookingsForUser(ctx context.Context, userID string) ([]response.BookingResponse, error)

	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	ReplaceBookingLifecycle(ctx context.Context, bookingID int64, req *request.BookingLifecycleRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookings(ctx context.Context, userID *string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get bookings from repository",
			zap.Error(err),
			zap.Stringp("user_id", userID),
		)
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to get booking by ID",
			zap.Error(err),
			zap.Int64("id", bookingID),
		)
		return nil, fmt.Errorf("get booking %d: %w", bookingID, err)
	}
	if booking == nil {
		return nil, repository.ErrBookingNotFound
	}

	bookingResp := response.BookingToResponse(booking)
	return &bookingResp, nil
}

func (s *bookingService) GetBookingsForUser(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	return s.GetBookings(ctx, &userID)
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	status := entity.BookingStatus(req.Status)
	if status == "" {
		status = entity.BookingStatusPending
	}

	booking := &entity.Booking{
		UserID:        req.UserID,
		FlightID:      req.FlightID,
		FlightName:    req.FlightName,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		DepartureDate: req.DepartureDate,
		ArrivalDate:   req.ArrivalDate,
		Price:         req.Price,
		CompanyID:     req.CompanyID,
		Status:        status,
		PaymentID:     req.PaymentID,
		PaidAt:        req.PaidAt,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int64("id", booking.ID),
		zap.String("user_id", booking.UserID),
		zap.String("flight_id", booking.FlightID),
	)

	bookingResp := response.BookingToResponse(booking)
	return &bookingResp, nil
}

// ReplaceBookingLifecycle replaces status, payment_id and paid_at whole;
// the snapshot fields stay as they were taken at creation time.
func (s *bookingService) ReplaceBookingLifecycle(ctx context.Context, bookingID int64, req *request.BookingLifecycleRequest) (*response.BookingResponse, error) {
	updated, err := s.repo.Booking.UpdateLifecycle(ctx, bookingID, entity.BookingStatus(req.Status), req.PaymentID, req.PaidAt)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking lifecycle updated",
		zap.Int64("id", bookingID),
		zap.String("status", req.Status),
	)

	bookingResp := response.BookingToResponse(updated)
	return &bookingResp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID int64) error {
	if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
		return err
	}

	s.log.Info("Booking deleted", zap.Int64("id", bookingID))
	return nil
}
