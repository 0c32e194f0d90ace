package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a denormalized snapshot of a flight taken at creation time.
// It is never re-synced with later flight changes and carries no live
// foreign keys, so it survives company and flight deletion.
type Booking struct {
	ID            int64         `db:"id"`
	UserID        string        `db:"user_id"`
	FlightID      string        `db:"flight_id"` // business code copy
	FlightName    string        `db:"flight_name"`
	Origin        string        `db:"origin"`
	Destination   string        `db:"destination"`
	DepartureTime string        `db:"departure_time"`
	ArrivalTime   string        `db:"arrival_time"`
	DepartureDate string        `db:"departure_date"`
	ArrivalDate   string        `db:"arrival_date"`
	Price         string        `db:"price"`
	CompanyID     int64         `db:"company_id"`
	Status        BookingStatus `db:"status"`
	PaymentID     *string       `db:"payment_id"`
	PaidAt        *string       `db:"paid_at"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}
