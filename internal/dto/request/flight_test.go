package request_test

import (
	"testing"

	"airline-booking/internal/dto/request"
	"airline-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func validFlightRequest() request.FlightRequest {
	return request.FlightRequest{
		Name:          "Dublin-London",
		FlightID:      "F1234567",
		Origin:        "DUB",
		Destination:   "LHR",
		DepartureTime: "10:30",
		ArrivalTime:   "12:00",
		DepartureDate: "20-11-2025",
		ArrivalDate:   "20-11-2025",
		Price:         "€1234567",
		BusinessSeats: 10,
		EconomySeats:  150,
		CompanyID:     1,
	}
}

func TestFlightRequest_Valid(t *testing.T) {
	errs := utils.ValidateStruct(validFlightRequest())
	assert.Empty(t, errs)
}

func TestFlightRequest_BusinessCodeShape(t *testing.T) {
	for _, code := range []string{"F123456", "F12345678", "G1234567", "1234567F", "FABCDEFG", ""} {
		req := validFlightRequest()
		req.FlightID = code

		errs := utils.ValidateStruct(req)
		assert.Contains(t, errs, "FlightID", "code %q should be rejected", code)
	}
}

func TestFlightRequest_FieldBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request.FlightRequest)
		field  string
	}{
		{"time not 5 chars", func(r *request.FlightRequest) { r.DepartureTime = "9:30" }, "DepartureTime"},
		{"date not 10 chars", func(r *request.FlightRequest) { r.ArrivalDate = "2025-11-2" }, "ArrivalDate"},
		{"origin too long", func(r *request.FlightRequest) { r.Origin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456" }, "Origin"},
		{"seats above cap", func(r *request.FlightRequest) { r.EconomySeats = 1001 }, "EconomySeats"},
		{"negative seats", func(r *request.FlightRequest) { r.BusinessSeats = -1 }, "BusinessSeats"},
		{"price missing", func(r *request.FlightRequest) { r.Price = "" }, "Price"},
		{"company missing", func(r *request.FlightRequest) { r.CompanyID = 0 }, "CompanyID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFlightRequest()
			tt.mutate(&req)

			errs := utils.ValidateStruct(req)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestFlightRequest_SeatsDefaultZeroAllowed(t *testing.T) {
	req := validFlightRequest()
	req.BusinessSeats = 0
	req.EconomySeats = 0

	errs := utils.ValidateStruct(req)
	assert.Empty(t, errs)
}

func TestFlightPatchRequest_SparseValidation(t *testing.T) {
	errs := utils.ValidateStruct(request.FlightPatchRequest{})
	assert.Empty(t, errs)

	price := "€9999999"
	errs = utils.ValidateStruct(request.FlightPatchRequest{Price: &price})
	assert.Empty(t, errs)

	badCode := "X0000001"
	errs = utils.ValidateStruct(request.FlightPatchRequest{FlightID: &badCode})
	assert.Contains(t, errs, "FlightID")
}
