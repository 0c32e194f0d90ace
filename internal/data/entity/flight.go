package entity

type Flight struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	FlightID      string `db:"flight_id"` // business code, F1234567
	Origin        string `db:"origin"`
	Destination   string `db:"destination"`
	DepartureTime string `db:"departure_time"`
	ArrivalTime   string `db:"arrival_time"`
	DepartureDate string `db:"departure_date"`
	ArrivalDate   string `db:"arrival_date"`
	Price         string `db:"price"`
	BusinessSeats int    `db:"business_seats"`
	EconomySeats  int    `db:"economy_seats"`
	CompanyID     int64  `db:"company_id"`
}
