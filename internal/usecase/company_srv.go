package usecase

import (
	"context"
	"fmt"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CompanyService interface {
	GetCompanies(ctx context.Context) ([]response.CompanyResponse, error)
	GetCompanyByID(ctx context.Context, companyID int64) (*response.CompanyResponse, error)

	CreateCompany(ctx context.Context, req *request.CompanyRequest) (*response.CompanyResponse, error)
	ReplaceCompany(ctx context.Context, companyID int64, req *request.CompanyRequest) (*response.CompanyResponse, error)
	PatchCompany(ctx context.Context, companyID int64, req *request.CompanyPatchRequest) (*response.CompanyResponse, error)
	DeleteCompany(ctx context.Context, companyID int64) error
}

type companyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCompanyService(repo *repository.Repository, log *zap.Logger) CompanyService {
	return &companyService{
		repo: repo,
		log:  log.With(zap.String("service", "company")),
	}
}

func (s *companyService) GetCompanies(ctx context.Context) ([]response.CompanyResponse, error) {
	companies, err := s.repo.Company.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get companies from repository", zap.Error(err))
		return nil, fmt.Errorf("get companies: %w", err)
	}

	companyResponses := make([]response.CompanyResponse, len(companies))
	for i, company := range companies {
		companyResponses[i] = response.CompanyToResponse(company)
	}

	return companyResponses, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID int64) (*response.CompanyResponse, error) {
	company, err := s.repo.Company.FindByID(ctx, companyID)
	if err != nil {
		s.log.Error("Failed to get company by ID",
			zap.Error(err),
			zap.Int64("company_id", companyID),
		)
		return nil, fmt.Errorf("get company %d: %w", companyID, err)
	}
	if company == nil {
		return nil, repository.ErrCompanyNotFound
	}

	companyResp := response.CompanyToResponse(company)
	return &companyResp, nil
}

func (s *companyService) CreateCompany(ctx context.Context, req *request.CompanyRequest) (*response.CompanyResponse, error) {
	company := &entity.Company{
		Code:    req.Code,
		Name:    req.Name,
		Country: req.Country,
		Email:   req.Email,
		Phone:   req.Phone,
	}

	if err := s.repo.Company.Create(ctx, company); err != nil {
		return nil, err
	}

	s.log.Info("Company created",
		zap.Int64("company_id", company.CompanyID),
		zap.String("code", company.Code),
		zap.String("name", company.Name),
	)

	companyResp := response.CompanyToResponse(company)
	return &companyResp, nil
}

// ReplaceCompany overwrites every mutable field with the supplied values.
func (s *companyService) ReplaceCompany(ctx context.Context, companyID int64, req *request.CompanyRequest) (*response.CompanyResponse, error) {
	updated, err := s.repo.Company.Update(ctx, &entity.Company{
		CompanyID: companyID,
		Code:      req.Code,
		Name:      req.Name,
		Country:   req.Country,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Company replaced", zap.Int64("company_id", companyID))

	companyResp := response.CompanyToResponse(updated)
	return &companyResp, nil
}

// PatchCompany merges only the fields present in the payload, field by
// field against the current row.
func (s *companyService) PatchCompany(ctx context.Context, companyID int64, req *request.CompanyPatchRequest) (*response.CompanyResponse, error) {
	company, err := s.repo.Company.FindByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company %d: %w", companyID, err)
	}
	if company == nil {
		return nil, repository.ErrCompanyNotFound
	}

	if req.Code != nil {
		company.Code = *req.Code
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Country != nil {
		company.Country = *req.Country
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}

	updated, err := s.repo.Company.Update(ctx, company)
	if err != nil {
		return nil, err
	}

	s.log.Info("Company patched", zap.Int64("company_id", companyID))

	companyResp := response.CompanyToResponse(updated)
	return &companyResp, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, companyID int64) error {
	flightsRemoved, err := s.repo.Company.DeleteCascade(ctx, companyID)
	if err != nil {
		return err
	}

	s.log.Info("Company deleted with cascade",
		zap.Int64("company_id", companyID),
		zap.Int64("flights_removed", flightsRemoved),
	)
	return nil
}
