package request

type FlightRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	FlightID      string `json:"flight_id" validate:"required,flight_code"`
	Origin        string `json:"origin" validate:"required,min=1,max=32"`
	Destination   string `json:"destination" validate:"required,min=1,max=255"`
	DepartureTime string `json:"departure_time" validate:"required,len=5"`
	ArrivalTime   string `json:"arrival_time" validate:"required,len=5"`
	DepartureDate string `json:"departure_date" validate:"required,len=10"`
	ArrivalDate   string `json:"arrival_date" validate:"required,len=10"`
	Price         string `json:"price" validate:"required,min=1,max=100"`
	BusinessSeats int    `json:"business_seats" validate:"gte=0,lte=1000"`
	EconomySeats  int    `json:"economy_seats" validate:"gte=0,lte=1000"`
	CompanyID     int64  `json:"company_id" validate:"required"`
}

// FlightForCompanyRequest is the nested-create payload: the owning
// company comes from the URL, never from the body.
type FlightForCompanyRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	FlightID      string `json:"flight_id" validate:"required,flight_code"`
	Origin        string `json:"origin" validate:"required,min=1,max=32"`
	Destination   string `json:"destination" validate:"required,min=1,max=255"`
	DepartureTime string `json:"departure_time" validate:"required,len=5"`
	ArrivalTime   string `json:"arrival_time" validate:"required,len=5"`
	DepartureDate string `json:"departure_date" validate:"required,len=10"`
	ArrivalDate   string `json:"arrival_date" validate:"required,len=10"`
	Price         string `json:"price" validate:"required,min=1,max=100"`
	BusinessSeats int    `json:"business_seats" validate:"gte=0,lte=1000"`
	EconomySeats  int    `json:"economy_seats" validate:"gte=0,lte=1000"`
}

type FlightPatchRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	FlightID      *string `json:"flight_id,omitempty" validate:"omitempty,flight_code"`
	Origin        *string `json:"origin,omitempty" validate:"omitempty,min=1,max=32"`
	Destination   *string `json:"destination,omitempty" validate:"omitempty,min=1,max=255"`
	DepartureTime *string `json:"departure_time,omitempty" validate:"omitempty,len=5"`
	ArrivalTime   *string `json:"arrival_time,omitempty" validate:"omitempty,len=5"`
	DepartureDate *string `json:"departure_date,omitempty" validate:"omitempty,len=10"`
	ArrivalDate   *string `json:"arrival_date,omitempty" validate:"omitempty,len=10"`
	Price         *string `json:"price,omitempty" validate:"omitempty,min=1,max=100"`
	BusinessSeats *int    `json:"business_seats,omitempty" validate:"omitempty,gte=0,lte=1000"`
	EconomySeats  *int    `json:"economy_seats,omitempty" validate:"omitempty,gte=0,lte=1000"`
	CompanyID     *int64  `json:"company_id,omitempty"`
}
