package repository

import (
	"context"
	"fmt"
	"strings"

	"airline-booking/pkg/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		company_id BIGSERIAL PRIMARY KEY,
		code VARCHAR(3) NOT NULL,
		name VARCHAR(100) NOT NULL,
		country VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NOT NULL
	)`,
	// No ON DELETE CASCADE: the cascade is an explicit transaction in
	// the company repository.
	`CREATE TABLE IF NOT EXISTS flights (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		flight_id VARCHAR(8) NOT NULL,
		origin VARCHAR(32) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		departure_time VARCHAR(5) NOT NULL,
		arrival_time VARCHAR(5) NOT NULL,
		departure_date VARCHAR(10) NOT NULL,
		arrival_date VARCHAR(10) NOT NULL,
		price VARCHAR(100) NOT NULL,
		business_seats INT NOT NULL DEFAULT 0,
		economy_seats INT NOT NULL DEFAULT 0,
		company_id BIGINT NOT NULL REFERENCES companies(company_id)
	)`,
	// Bookings are historical snapshots: company_id and flight_id carry
	// no foreign keys so rows survive parent deletion.
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		user_id VARCHAR(100) NOT NULL,
		flight_id VARCHAR(8) NOT NULL,
		flight_name VARCHAR(100) NOT NULL,
		origin VARCHAR(32) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		departure_time VARCHAR(5) NOT NULL,
		arrival_time VARCHAR(5) NOT NULL,
		departure_date VARCHAR(10) NOT NULL,
		arrival_date VARCHAR(10) NOT NULL,
		price VARCHAR(100) NOT NULL,
		company_id BIGINT NOT NULL,
		status VARCHAR(10) NOT NULL DEFAULT 'pending',
		payment_id VARCHAR(100),
		paid_at VARCHAR(40),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// companyColumns lists the columns allowed in the natural key config.
var companyColumns = map[string]bool{
	"code":    true,
	"name":    true,
	"country": true,
	"email":   true,
	"phone":   true,
}

// Migrate applies the schema and rebuilds the company natural-key index
// from the configured column list.
func Migrate(ctx context.Context, db database.PgxIface, naturalKey []string) error {
	if len(naturalKey) == 0 {
		naturalKey = []string{"code", "name"}
	}
	for _, col := range naturalKey {
		if !companyColumns[col] {
			return fmt.Errorf("invalid company natural key column %q", col)
		}
	}

	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if _, err := db.Exec(ctx, `DROP INDEX IF EXISTS companies_natural_key`); err != nil {
		return fmt.Errorf("drop natural key index: %w", err)
	}

	index := fmt.Sprintf(
		`CREATE UNIQUE INDEX companies_natural_key ON companies (%s)`,
		strings.Join(naturalKey, ", "),
	)
	if _, err := db.Exec(ctx, index); err != nil {
		return fmt.Errorf("create natural key index: %w", err)
	}

	return nil
}
