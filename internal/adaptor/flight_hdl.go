package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/internal/usecase"
	"airline-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// GetFlights handles GET /api/flights
func (h *FlightHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.GetFlights(r.Context(), nil, nil)
	if err != nil {
		h.handleServiceError(w, err, "get flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// SearchFlights handles GET /api/flights/search
// Optional query params: ?origin=DUB&destination=LHR (substring, case-insensitive)
func (h *FlightHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var origin, destination *string
	if o := query.Get("origin"); o != "" {
		origin = &o
	}
	if d := query.Get("destination"); d != "" {
		destination = &d
	}

	flights, err := h.service.GetFlights(r.Context(), origin, destination)
	if err != nil {
		h.handleServiceError(w, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// GetFlightByID handles GET /api/flights/{id}, company included
func (h *FlightHandler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	flightID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid flight ID", nil)
		return
	}

	flight, err := h.service.GetFlightByID(r.Context(), flightID)
	if err != nil {
		h.handleServiceError(w, err, "get flight by ID")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// GetFlightsForCompany handles GET /api/companies/{id}/flights
func (h *FlightHandler) GetFlightsForCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid company ID", nil)
		return
	}

	flights, err := h.service.GetFlightsForCompany(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err, "get flights for company")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// CreateFlight handles POST /api/flights
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req request.FlightRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "success", flight)
}

// CreateFlightForCompany handles POST /api/companies/{id}/flights
func (h *FlightHandler) CreateFlightForCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid company ID", nil)
		return
	}

	var req request.FlightForCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.CreateFlightForCompany(r.Context(), companyID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create flight for company")
		return
	}

	utils.ResponseCreated(w, "success", flight)
}

// ReplaceFlight handles PUT /api/flights/{id}
func (h *FlightHandler) ReplaceFlight(w http.ResponseWriter, r *http.Request) {
	flightID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid flight ID", nil)
		return
	}

	var req request.FlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.ReplaceFlight(r.Context(), flightID, &req)
	if err != nil {
		h.handleServiceError(w, err, "replace flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// PatchFlight handles PATCH /api/flights/{id}
func (h *FlightHandler) PatchFlight(w http.ResponseWriter, r *http.Request) {
	flightID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid flight ID", nil)
		return
	}

	var req request.FlightPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.PatchFlight(r.Context(), flightID, &req)
	if err != nil {
		h.handleServiceError(w, err, "patch flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// DeleteFlight handles DELETE /api/flights/{id}
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid flight ID", nil)
		return
	}

	if err := h.service.DeleteFlight(r.Context(), flightID); err != nil {
		h.handleServiceError(w, err, "delete flight")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps service errors for flight operations
func (h *FlightHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrFlightNotFound),
		errors.Is(err, repository.ErrCompanyNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
