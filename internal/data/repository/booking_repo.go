package repository

import (
	"context"
	"fmt"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindAll(ctx context.Context, userID *string) ([]*entity.Booking, error)
	UpdateLifecycle(ctx context.Context, id int64, status entity.BookingStatus, paymentID, paidAt *string) (*entity.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, flight_id, flight_name, origin, destination, departure_time, arrival_time, departure_date, arrival_date, price, company_id, status, payment_id, paid_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.FlightID,
		&b.FlightName,
		&b.Origin,
		&b.Destination,
		&b.DepartureTime,
		&b.ArrivalTime,
		&b.DepartureDate,
		&b.ArrivalDate,
		&b.Price,
		&b.CompanyID,
		&b.Status,
		&b.PaymentID,
		&b.PaidAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (user_id, flight_id, flight_name, origin, destination, departure_time, arrival_time, departure_date, arrival_date, price, company_id, status, payment_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.UserID,
		booking.FlightID,
		booking.FlightName,
		booking.Origin,
		booking.Destination,
		booking.DepartureTime,
		booking.ArrivalTime,
		booking.DepartureDate,
		booking.ArrivalDate,
		booking.Price,
		booking.CompanyID,
		booking.Status,
		booking.PaymentID,
		booking.PaidAt,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID),
			zap.String("flight_id", booking.FlightID),
		)
		return fmt.Errorf("create booking for user %s: %w", booking.UserID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

// FindAll lists bookings ordered by id, optionally filtered by exact user id.
func (r *bookingRepository) FindAll(ctx context.Context, userID *string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []interface{}{}

	if userID != nil && *userID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Stringp("user_id", userID),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// UpdateLifecycle replaces the post-creation lifecycle fields: status,
// payment id and paid-at. The snapshot fields are immutable.
func (r *bookingRepository) UpdateLifecycle(ctx context.Context, id int64, status entity.BookingStatus, paymentID, paidAt *string) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, payment_id = $3, paid_at = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, status, paymentID, paidAt))
	if err == pgx.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		r.log.Error("Failed to update booking lifecycle",
			zap.Error(err),
			zap.Int64("id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update booking %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	r.log.Info("Booking deleted", zap.Int64("id", id))
	return nil
}

var _ BookingRepository = (*bookingRepository)(nil)
