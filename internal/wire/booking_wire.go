package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.GetBookings)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}", bookingHandler.ReplaceBookingLifecycle)
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})

	// Path-scoped listing by user
	r.Get("/api/users/{user_id}/bookings", bookingHandler.GetBookingsForUser)
}
