package repository

import (
	"context"
	"fmt"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	FindByID(ctx context.Context, id int64) (*entity.Company, error)
	FindAll(ctx context.Context) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) (*entity.Company, error)
	DeleteCascade(ctx context.Context, id int64) (int64, error)
}

type companyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCompanyRepository(db database.PgxIface, log *zap.Logger) CompanyRepository {
	return &companyRepository{
		db:  db,
		log: log.With(zap.String("repository", "company")),
	}
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (code, name, country, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING company_id
	`

	err := r.db.QueryRow(ctx, query,
		company.Code,
		company.Name,
		company.Country,
		company.Email,
		company.Phone,
	).Scan(&company.CompanyID)

	if isUniqueViolation(err) {
		return ErrCompanyExists
	}
	if err != nil {
		r.log.Error("Failed to create company",
			zap.Error(err),
			zap.String("code", company.Code),
			zap.String("name", company.Name),
		)
		return fmt.Errorf("create company %s: %w", company.Name, err)
	}

	return nil
}

func (r *companyRepository) FindByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `
		SELECT company_id, code, name, country, email, phone
		FROM companies
		WHERE company_id = $1
	`

	var company entity.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.CompanyID,
		&company.Code,
		&company.Name,
		&company.Country,
		&company.Email,
		&company.Phone,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find company by ID",
			zap.Error(err),
			zap.Int64("company_id", id),
		)
		return nil, fmt.Errorf("find company by ID %d: %w", id, err)
	}

	return &company, nil
}

func (r *companyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	query := `
		SELECT company_id, code, name, country, email, phone
		FROM companies
		ORDER BY company_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all companies", zap.Error(err))
		return nil, fmt.Errorf("find all companies: %w", err)
	}
	defer rows.Close()

	var companies []*entity.Company
	for rows.Next() {
		var company entity.Company
		err := rows.Scan(
			&company.CompanyID,
			&company.Code,
			&company.Name,
			&company.Country,
			&company.Email,
			&company.Phone,
		)
		if err != nil {
			r.log.Error("Failed to scan company row", zap.Error(err))
			return nil, fmt.Errorf("scan company row: %w", err)
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate company rows: %w", err)
	}

	return companies, nil
}

// Update overwrites the full mutable field set and returns the stored row.
func (r *companyRepository) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	query := `
		UPDATE companies
		SET code = $2, name = $3, country = $4, email = $5, phone = $6
		WHERE company_id = $1
		RETURNING company_id, code, name, country, email, phone
	`

	var updated entity.Company
	err := r.db.QueryRow(ctx, query,
		company.CompanyID,
		company.Code,
		company.Name,
		company.Country,
		company.Email,
		company.Phone,
	).Scan(
		&updated.CompanyID,
		&updated.Code,
		&updated.Name,
		&updated.Country,
		&updated.Email,
		&updated.Phone,
	)

	if err == pgx.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if isUniqueViolation(err) {
		return nil, ErrCompanyExists
	}
	if err != nil {
		r.log.Error("Failed to update company",
			zap.Error(err),
			zap.Int64("company_id", company.CompanyID),
		)
		return nil, fmt.Errorf("update company %d: %w", company.CompanyID, err)
	}

	return &updated, nil
}

// DeleteCascade removes the company and every flight it owns inside one
// transaction. Returns the number of flights removed.
func (r *companyRepository) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin cascade delete: %w", err)
	}
	defer tx.Rollback(ctx)

	flights, err := tx.Exec(ctx, `DELETE FROM flights WHERE company_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete owned flights",
			zap.Error(err),
			zap.Int64("company_id", id),
		)
		return 0, fmt.Errorf("delete flights of company %d: %w", id, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM companies WHERE company_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete company",
			zap.Error(err),
			zap.Int64("company_id", id),
		)
		return 0, fmt.Errorf("delete company %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return 0, ErrCompanyNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit cascade delete: %w", err)
	}

	r.log.Info("Company deleted",
		zap.Int64("company_id", id),
		zap.Int64("flights_removed", flights.RowsAffected()),
	)
	return flights.RowsAffected(), nil
}

var _ CompanyRepository = (*companyRepository)(nil)
