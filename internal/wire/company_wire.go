package wire

import (
	"airline-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCompany(r chi.Router, companyHandler *adaptor.CompanyHandler, flightHandler *adaptor.FlightHandler) {
	r.Route("/api/companies", func(r chi.Router) {
		r.Post("/", companyHandler.CreateCompany)
		r.Get("/", companyHandler.GetCompanies)
		r.Get("/{id}", companyHandler.GetCompanyByID)
		r.Put("/{id}", companyHandler.ReplaceCompany)
		r.Patch("/{id}", companyHandler.PatchCompany)
		r.Delete("/{id}", companyHandler.DeleteCompany)

		// Nested: flights scoped under their owning company
		r.Post("/{id}/flights", flightHandler.CreateFlightForCompany)
		r.Get("/{id}/flights", flightHandler.GetFlightsForCompany)
	})
}
