package repository

import (
	"context"
	"fmt"
	"strings"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByID(ctx context.Context, id int64) (*entity.Flight, error)
	FindByIDWithCompany(ctx context.Context, id int64) (*entity.Flight, *entity.Company, error)
	FindAll(ctx context.Context, origin, destination *string) ([]*entity.Flight, error)
	FindByCompanyID(ctx context.Context, companyID int64) ([]*entity.Flight, error)
	Update(ctx context.Context, flight *entity.Flight) (*entity.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

const flightColumns = `id, name, flight_id, origin, destination, departure_time, arrival_time, departure_date, arrival_date, price, business_seats, economy_seats, company_id`

func scanFlight(row pgx.Row) (*entity.Flight, error) {
	var f entity.Flight
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.FlightID,
		&f.Origin,
		&f.Destination,
		&f.DepartureTime,
		&f.ArrivalTime,
		&f.DepartureDate,
		&f.ArrivalDate,
		&f.Price,
		&f.BusinessSeats,
		&f.EconomySeats,
		&f.CompanyID,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (name, flight_id, origin, destination, departure_time, arrival_time, departure_date, arrival_date, price, business_seats, economy_seats, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		flight.Name,
		flight.FlightID,
		flight.Origin,
		flight.Destination,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.DepartureDate,
		flight.ArrivalDate,
		flight.Price,
		flight.BusinessSeats,
		flight.EconomySeats,
		flight.CompanyID,
	).Scan(&flight.ID)

	// A missing parent company is a not-found condition, not a conflict
	if isForeignKeyViolation(err) {
		return ErrCompanyNotFound
	}
	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("name", flight.Name),
			zap.String("flight_id", flight.FlightID),
			zap.Int64("company_id", flight.CompanyID),
		)
		return fmt.Errorf("create flight %s: %w", flight.Name, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id int64) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return nil, fmt.Errorf("find flight by ID %d: %w", id, err)
	}

	return flight, nil
}

// FindByIDWithCompany eager-loads the owning company in one query.
func (r *flightRepository) FindByIDWithCompany(ctx context.Context, id int64) (*entity.Flight, *entity.Company, error) {
	query := `
		SELECT f.id, f.name, f.flight_id, f.origin, f.destination, f.departure_time, f.arrival_time, f.departure_date, f.arrival_date, f.price, f.business_seats, f.economy_seats, f.company_id,
		       c.company_id, c.code, c.name, c.country, c.email, c.phone
		FROM flights f
		JOIN companies c ON c.company_id = f.company_id
		WHERE f.id = $1
	`

	var f entity.Flight
	var c entity.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.Name,
		&f.FlightID,
		&f.Origin,
		&f.Destination,
		&f.DepartureTime,
		&f.ArrivalTime,
		&f.DepartureDate,
		&f.ArrivalDate,
		&f.Price,
		&f.BusinessSeats,
		&f.EconomySeats,
		&f.CompanyID,
		&c.CompanyID,
		&c.Code,
		&c.Name,
		&c.Country,
		&c.Email,
		&c.Phone,
	)

	if err == pgx.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight with company",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return nil, nil, fmt.Errorf("find flight %d with company: %w", id, err)
	}

	return &f, &c, nil
}

// FindAll lists flights ordered by id. Optional origin and destination
// filters match case-insensitive substrings and are ANDed.
func (r *flightRepository) FindAll(ctx context.Context, origin, destination *string) ([]*entity.Flight, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + flightColumns + ` FROM flights`)

	args := []interface{}{}
	conditions := []string{}

	if origin != nil && *origin != "" {
		args = append(args, "%"+*origin+"%")
		conditions = append(conditions, fmt.Sprintf("origin ILIKE $%d", len(args)))
	}
	if destination != nil && *destination != "" {
		args = append(args, "%"+*destination+"%")
		conditions = append(conditions, fmt.Sprintf("destination ILIKE $%d", len(args)))
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all flights",
			zap.Error(err),
			zap.Stringp("origin", origin),
			zap.Stringp("destination", destination),
		)
		return nil, fmt.Errorf("find all flights: %w", err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

func (r *flightRepository) FindByCompanyID(ctx context.Context, companyID int64) ([]*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE company_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		r.log.Error("Failed to find flights by company",
			zap.Error(err),
			zap.Int64("company_id", companyID),
		)
		return nil, fmt.Errorf("find flights of company %d: %w", companyID, err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

func collectFlights(rows pgx.Rows) ([]*entity.Flight, error) {
	var flights []*entity.Flight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, flight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flight rows: %w", err)
	}

	return flights, nil
}

// Update overwrites the full mutable field set and returns the stored row.
func (r *flightRepository) Update(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	query := `
		UPDATE flights
		SET name = $2, flight_id = $3, origin = $4, destination = $5, departure_time = $6, arrival_time = $7, departure_date = $8, arrival_date = $9, price = $10, business_seats = $11, economy_seats = $12, company_id = $13
		WHERE id = $1
		RETURNING ` + flightColumns

	updated, err := scanFlight(r.db.QueryRow(ctx, query,
		flight.ID,
		flight.Name,
		flight.FlightID,
		flight.Origin,
		flight.Destination,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.DepartureDate,
		flight.ArrivalDate,
		flight.Price,
		flight.BusinessSeats,
		flight.EconomySeats,
		flight.CompanyID,
	))

	if err == pgx.ErrNoRows {
		return nil, ErrFlightNotFound
	}
	if isForeignKeyViolation(err) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.Int64("id", flight.ID),
		)
		return nil, fmt.Errorf("update flight %d: %w", flight.ID, err)
	}

	return updated, nil
}

func (r *flightRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete flight %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrFlightNotFound
	}

	r.log.Info("Flight deleted", zap.Int64("id", id))
	return nil
}

var _ FlightRepository = (*flightRepository)(nil)
