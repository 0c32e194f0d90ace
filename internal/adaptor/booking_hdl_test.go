package adaptor

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newBookingRouter(service *MockBookingService) *chi.Mux {
	handler := NewBookingHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", handler.CreateBooking)
		r.Get("/", handler.GetBookings)
		r.Get("/{id}", handler.GetBookingByID)
		r.Put("/{id}", handler.ReplaceBookingLifecycle)
		r.Delete("/{id}", handler.DeleteBooking)
	})
	r.Get("/api/users/{user_id}/bookings", handler.GetBookingsForUser)
	return r
}

func johnsBookingResponse() response.BookingResponse {
	return response.BookingResponse{
		ID:            1,
		UserID:        "john@example.com",
		FlightID:      "F1234567",
		FlightName:    "Dublin-London",
		Origin:        "DUB",
		Destination:   "LHR",
		DepartureTime: "10:30",
		ArrivalTime:   "12:00",
		DepartureDate: "20-11-2025",
		ArrivalDate:   "20-11-2025",
		Price:         "€1234567",
		CompanyID:     1,
		Status:        "pending",
		CreatedAt:     "2025-11-18T09:00:00Z",
		UpdatedAt:     "2025-11-18T09:00:00Z",
	}
}

func validBookingBody() string {
	return `{"user_id":"john@example.com","flight_id":"F1234567","flight_name":"Dublin-London","origin":"DUB","destination":"LHR","departure_time":"10:30","arrival_time":"12:00","departure_date":"20-11-2025","arrival_date":"20-11-2025","price":"€1234567","company_id":1}`
}

func TestBookingHandler_Create_Returns201(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	resp := johnsBookingResponse()
	service.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req *request.BookingRequest) bool {
		return req.UserID == "john@example.com" && req.Status == ""
	})).Return(&resp, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(validBookingBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	service.AssertExpectations(t)
}

func TestBookingHandler_Create_UnknownStatusReturns400(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	body := `{"user_id":"john@example.com","flight_id":"F1234567","flight_name":"Dublin-London","origin":"DUB","destination":"LHR","departure_time":"10:30","arrival_time":"12:00","departure_date":"20-11-2025","arrival_date":"20-11-2025","price":"€1234567","company_id":1,"status":"confirmed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_ListFiltersByQueryUserID(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	userID := "john@example.com"
	service.On("GetBookings", mock.Anything, &userID).
		Return([]response.BookingResponse{johnsBookingResponse()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?user_id=john@example.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestBookingHandler_GetForUserPath(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("GetBookingsForUser", mock.Anything, "john@example.com").
		Return([]response.BookingResponse{johnsBookingResponse()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/john@example.com/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestBookingHandler_GetByID_MissingReturns404(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("GetBookingByID", mock.Anything, int64(9999)).Return(nil, repository.ErrBookingNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/9999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingHandler_ReplaceLifecycle_Returns200(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	resp := johnsBookingResponse()
	resp.Status = "paid"
	resp.PaymentID = "pay_123"
	service.On("ReplaceBookingLifecycle", mock.Anything, int64(1), mock.MatchedBy(func(req *request.BookingLifecycleRequest) bool {
		return req.Status == "paid" && req.PaymentID != nil && *req.PaymentID == "pay_123"
	})).Return(&resp, nil)

	body := `{"status":"paid","payment_id":"pay_123","paid_at":"2025-11-19T14:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/1", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestBookingHandler_ReplaceLifecycle_MissingStatusReturns400(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	req := httptest.NewRequest(http.MethodPut, "/api/bookings/1", bytes.NewBufferString(`{"payment_id":"pay_123"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "ReplaceBookingLifecycle")
}

func TestBookingHandler_Delete_Returns204(t *testing.T) {
	service := &MockBookingService{}
	router := newBookingRouter(service)

	service.On("DeleteBooking", mock.Anything, int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
