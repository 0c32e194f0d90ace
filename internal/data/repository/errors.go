package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrCompanyNotFound is returned when a company id does not exist.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrFlightNotFound is returned when a flight id does not exist.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrBookingNotFound is returned when a booking id does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCompanyExists is returned when the company natural key collides
	// with an existing row.
	ErrCompanyExists = errors.New("company already exists")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
