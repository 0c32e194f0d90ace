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

type FlightService interface {
	GetFlights(ctx context.Context, origin, destination *string) ([]response.FlightResponse, error)
	GetFlightByID(ctx context.Context, flightID int64) (*response.FlightDetailResponse, error)
	GetFlightsForCompany(ctx context.Context, companyID int64) ([]response.FlightResponse, error)

	CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error)
	CreateFlightForCompany(ctx context.Context, companyID int64, req *request.FlightForCompanyRequest) (*response.FlightResponse, error)
	ReplaceFlight(ctx context.Context, flightID int64, req *request.FlightRequest) (*response.FlightResponse, error)
	PatchFlight(ctx context.Context, flightID int64, req *request.FlightPatchRequest) (*response.FlightResponse, error)
	DeleteFlight(ctx context.Context, flightID int64) error
}

type flightService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFlightService(repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{
		repo: repo,
		log:  log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) GetFlights(ctx context.Context, origin, destination *string) ([]response.FlightResponse, error) {
	flights, err := s.repo.Flight.FindAll(ctx, origin, destination)
	if err != nil {
		s.log.Error("Failed to get flights from repository",
			zap.Error(err),
			zap.Stringp("origin", origin),
			zap.Stringp("destination", destination),
		)
		return nil, fmt.Errorf("get flights: %w", err)
	}

	flightResponses := make([]response.FlightResponse, len(flights))
	for i, flight := range flights {
		flightResponses[i] = response.FlightToResponse(flight)
	}

	return flightResponses, nil
}

func (s *flightService) GetFlightByID(ctx context.Context, flightID int64) (*response.FlightDetailResponse, error) {
	flight, company, err := s.repo.Flight.FindByIDWithCompany(ctx, flightID)
	if err != nil {
		s.log.Error("Failed to get flight by ID",
			zap.Error(err),
			zap.Int64("id", flightID),
		)
		return nil, fmt.Errorf("get flight %d: %w", flightID, err)
	}
	if flight == nil {
		return nil, repository.ErrFlightNotFound
	}

	detail := &response.FlightDetailResponse{
		FlightResponse: response.FlightToResponse(flight),
	}
	if company != nil {
		companyResp := response.CompanyToResponse(company)
		detail.Company = &companyResp
	}

	return detail, nil
}

// GetFlightsForCompany returns the company's flights. An empty list is
// valid only when the company exists; otherwise the company id itself
// is the missing resource.
func (s *flightService) GetFlightsForCompany(ctx context.Context, companyID int64) ([]response.FlightResponse, error) {
	flights, err := s.repo.Flight.FindByCompanyID(ctx, companyID)
	if err != nil {
		s.log.Error("Failed to get flights for company",
			zap.Error(err),
			zap.Int64("company_id", companyID),
		)
		return nil, fmt.Errorf("get flights of company %d: %w", companyID, err)
	}

	if len(flights) == 0 {
		company, err := s.repo.Company.FindByID(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("get company %d: %w", companyID, err)
		}
		if company == nil {
			return nil, repository.ErrCompanyNotFound
		}
	}

	flightResponses := make([]response.FlightResponse, len(flights))
	for i, flight := range flights {
		flightResponses[i] = response.FlightToResponse(flight)
	}

	return flightResponses, nil
}

func (s *flightService) CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error) {
	flight := &entity.Flight{
		Name:          req.Name,
		FlightID:      req.FlightID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		DepartureDate: req.DepartureDate,
		ArrivalDate:   req.ArrivalDate,
		Price:         req.Price,
		BusinessSeats: req.BusinessSeats,
		EconomySeats:  req.EconomySeats,
		CompanyID:     req.CompanyID,
	}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		return nil, err
	}

	s.log.Info("Flight created",
		zap.Int64("id", flight.ID),
		zap.String("flight_id", flight.FlightID),
		zap.Int64("company_id", flight.CompanyID),
	)

	flightResp := response.FlightToResponse(flight)
	return &flightResp, nil
}

// CreateFlightForCompany creates a flight owned by the company in the
// URL; the path id always wins over anything in the body.
func (s *flightService) CreateFlightForCompany(ctx context.Context, companyID int64, req *request.FlightForCompanyRequest) (*response.FlightResponse, error) {
	company, err := s.repo.Company.FindByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company %d: %w", companyID, err)
	}
	if company == nil {
		return nil, repository.ErrCompanyNotFound
	}

	flight := &entity.Flight{
		Name:          req.Name,
		FlightID:      req.FlightID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		DepartureDate: req.DepartureDate,
		ArrivalDate:   req.ArrivalDate,
		Price:         req.Price,
		BusinessSeats: req.BusinessSeats,
		EconomySeats:  req.EconomySeats,
		CompanyID:     companyID,
	}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		return nil, err
	}

	s.log.Info("Flight created for company",
		zap.Int64("id", flight.ID),
		zap.String("flight_id", flight.FlightID),
		zap.Int64("company_id", companyID),
	)

	flightResp := response.FlightToResponse(flight)
	return &flightResp, nil
}

// ReplaceFlight overwrites every mutable field with the supplied values.
func (s *flightService) ReplaceFlight(ctx context.Context, flightID int64, req *request.FlightRequest) (*response.FlightResponse, error) {
	updated, err := s.repo.Flight.Update(ctx, &entity.Flight{
		ID:            flightID,
		Name:          req.Name,
		FlightID:      req.FlightID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		DepartureDate: req.DepartureDate,
		ArrivalDate:   req.ArrivalDate,
		Price:         req.Price,
		BusinessSeats: req.BusinessSeats,
		EconomySeats:  req.EconomySeats,
		CompanyID:     req.CompanyID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Flight replaced", zap.Int64("id", flightID))

	flightResp := response.FlightToResponse(updated)
	return &flightResp, nil
}

// PatchFlight merges only the fields present in the payload against the
// current row, leaving everything else untouched.
func (s *flightService) PatchFlight(ctx context.Context, flightID int64, req *request.FlightPatchRequest) (*response.FlightResponse, error) {
	flight, err := s.repo.Flight.FindByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("get flight %d: %w", flightID, err)
	}
	if flight == nil {
		return nil, repository.ErrFlightNotFound
	}

	if req.Name != nil {
		flight.Name = *req.Name
	}
	if req.FlightID != nil {
		flight.FlightID = *req.FlightID
	}
	if req.Origin != nil {
		flight.Origin = *req.Origin
	}
	if req.Destination != nil {
		flight.Destination = *req.Destination
	}
	if req.DepartureTime != nil {
		flight.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		flight.ArrivalTime = *req.ArrivalTime
	}
	if req.DepartureDate != nil {
		flight.DepartureDate = *req.DepartureDate
	}
	if req.ArrivalDate != nil {
		flight.ArrivalDate = *req.ArrivalDate
	}
	if req.Price != nil {
		flight.Price = *req.Price
	}
	if req.BusinessSeats != nil {
		flight.BusinessSeats = *req.BusinessSeats
	}
	if req.EconomySeats != nil {
		flight.EconomySeats = *req.EconomySeats
	}
	if req.CompanyID != nil {
		flight.CompanyID = *req.CompanyID
	}

	updated, err := s.repo.Flight.Update(ctx, flight)
	if err != nil {
		return nil, err
	}

	s.log.Info("Flight patched", zap.Int64("id", flightID))

	flightResp := response.FlightToResponse(updated)
	return &flightResp, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID int64) error {
	if err := s.repo.Flight.Delete(ctx, flightID); err != nil {
		return err
	}

	s.log.Info("Flight deleted", zap.Int64("id", flightID))
	return nil
}
