package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	r.Route("/api/flights", func(r chi.Router) {
		r.Post("/", flightHandler.CreateFlight)
		r.Get("/", flightHandler.GetFlights)

		// GET /api/flights/search?origin=DUB&destination=LHR
		r.Get("/search", flightHandler.SearchFlights)

		r.Get("/{id}", flightHandler.GetFlightByID)
		r.Put("/{id}", flightHandler.ReplaceFlight)
		r.Patch("/{id}", flightHandler.PatchFlight)
		r.Delete("/{id}", flightHandler.DeleteFlight)
	})
}
