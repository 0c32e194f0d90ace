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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBookings handles GET /api/bookings
// Optional query param: ?user_id= (exact match)
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	var userID *string
	if u := r.URL.Query().Get("user_id"); u != "" {
		userID = &u
	}

	bookings, err := h.service.GetBookings(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBookingsForUser handles GET /api/users/{user_id}/bookings
func (h *BookingHandler) GetBookingsForUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	bookings, err := h.service.GetBookingsForUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get bookings for user")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.BookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// ReplaceBookingLifecycle handles PUT /api/bookings/{id}
func (h *BookingHandler) ReplaceBookingLifecycle(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	var req request.BookingLifecycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.ReplaceBookingLifecycle(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking lifecycle")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		h.handleServiceError(w, err, "delete booking")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps service errors for booking operations
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
