package response

import (
	"airline-booking/internal/data/entity"
)

type FlightResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FlightID      string `json:"flight_id"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureDate string `json:"departure_date"`
	ArrivalDate   string `json:"arrival_date"`
	Price         string `json:"price"`
	BusinessSeats int    `json:"business_seats"`
	EconomySeats  int    `json:"economy_seats"`
	CompanyID     int64  `json:"company_id"`
}

// FlightDetailResponse embeds the owning company for flight-by-id reads.
type FlightDetailResponse struct {
	FlightResponse
	Company *CompanyResponse `json:"company,omitempty"`
}

func FlightToResponse(flight *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:            flight.ID,
		Name:          flight.Name,
		FlightID:      flight.FlightID,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		DepartureDate: flight.DepartureDate,
		ArrivalDate:   flight.ArrivalDate,
		Price:         flight.Price,
		BusinessSeats: flight.BusinessSeats,
		EconomySeats:  flight.EconomySeats,
		CompanyID:     flight.CompanyID,
	}
}
