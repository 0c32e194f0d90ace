package request

// BookingRequest carries the full flight snapshot: bookings are created
// independently and never joined back to the flights table.
type BookingRequest struct {
	UserID        string  `json:"user_id" validate:"required,min=1,max=100"`
	FlightID      string  `json:"flight_id" validate:"required,min=1,max=8"`
	FlightName    string  `json:"flight_name" validate:"required,min=1,max=100"`
	Origin        string  `json:"origin" validate:"required,min=1,max=32"`
	Destination   string  `json:"destination" validate:"required,min=1,max=255"`
	DepartureTime string  `json:"departure_time" validate:"required,len=5"`
	ArrivalTime   string  `json:"arrival_time" validate:"required,len=5"`
	DepartureDate string  `json:"departure_date" validate:"required,len=10"`
	ArrivalDate   string  `json:"arrival_date" validate:"required,len=10"`
	Price         string  `json:"price" validate:"required,min=1,max=100"`
	CompanyID     int64   `json:"company_id" validate:"required"`
	Status        string  `json:"status" validate:"omitempty,oneof=pending paid cancelled"`
	PaymentID     *string `json:"payment_id,omitempty" validate:"omitempty,max=100"`
	PaidAt        *string `json:"paid_at,omitempty" validate:"omitempty,max=40"`
}

// BookingLifecycleRequest replaces the mutable lifecycle fields whole.
// Absent payment_id or paid_at clears the stored value.
type BookingLifecycleRequest struct {
	Status    string  `json:"status" validate:"required,oneof=pending paid cancelled"`
	PaymentID *string `json:"payment_id,omitempty" validate:"omitempty,max=100"`
	PaidAt    *string `json:"paid_at,omitempty" validate:"omitempty,max=40"`
}
