package adaptor

import (
	"context"

	"airline-booking/internal/dto/request"
	"airline-booking/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompanies(ctx context.Context) ([]response.CompanyResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.CompanyResponse), args.Error(1)
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID int64) (*response.CompanyResponse, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CompanyResponse), args.Error(1)
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, req *request.CompanyRequest) (*response.CompanyResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CompanyResponse), args.Error(1)
}

func (m *MockCompanyService) ReplaceCompany(ctx context.Context, companyID int64, req *request.CompanyRequest) (*response.CompanyResponse, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CompanyResponse), args.Error(1)
}

func (m *MockCompanyService) PatchCompany(ctx context.Context, companyID int64, req *request.CompanyPatchRequest) (*response.CompanyResponse, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CompanyResponse), args.Error(1)
}

func (m *MockCompanyService) DeleteCompany(ctx context.Context, companyID int64) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) GetFlights(ctx context.Context, origin, destination *string) ([]response.FlightResponse, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) GetFlightByID(ctx context.Context, flightID int64) (*response.FlightDetailResponse, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightDetailResponse), args.Error(1)
}

func (m *MockFlightService) GetFlightsForCompany(ctx context.Context, companyID int64) ([]response.FlightResponse, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) CreateFlightForCompany(ctx context.Context, companyID int64, req *request.FlightForCompanyRequest) (*response.FlightResponse, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) ReplaceFlight(ctx context.Context, flightID int64, req *request.FlightRequest) (*response.FlightResponse, error) {
	args := m.Called(ctx, flightID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) PatchFlight(ctx context.Context, flightID int64, req *request.FlightPatchRequest) (*response.FlightResponse, error) {
	args := m.Called(ctx, flightID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) DeleteFlight(ctx context.Context, flightID int64) error {
	args := m.Called(ctx, flightID)
	return args.Error(0)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetBookings(ctx context.Context, userID *string) ([]response.BookingResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, bookingID int64) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetBookingsForUser(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) ReplaceBookingLifecycle(ctx context.Context, bookingID int64, req *request.BookingLifecycleRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}
