package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/internal/usecase"
	"airline-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	service usecase.CompanyService
	log     *zap.Logger
}

func NewCompanyHandler(service usecase.CompanyService, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		log:     log.With(zap.String("handler", "company")),
	}
}

// GetCompanies handles GET /api/companies
func (h *CompanyHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.GetCompanies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get companies")
		return
	}

	utils.ResponseSuccess(w, "success", companies)
}

// GetCompanyByID handles GET /api/companies/{id}
func (h *CompanyHandler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	companyID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid company ID", nil)
		return
	}

	company, err := h.service.GetCompanyByID(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err, "get company by ID")
		return
	}

	utils.ResponseSuccess(w, "success", company)
}

// CreateCompany handles POST /api/companies
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req request.CompanyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	company, err := h.service.CreateCompany(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create company")
		return
	}

	utils.ResponseCreated(w, "success", company)
}

// ReplaceCompany handles PUT /api/companies/{id}
func (h *CompanyHandler) ReplaceCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid company ID", nil)
		return
	}

	var req request.CompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	company, err := h.service.ReplaceCompany(r.Context(), companyID, &req)
	if err != nil {
		h.handleServiceError(w, err, "replace company")
		return
	}

	utils.ResponseSuccess(w, "success", company)
}

// PatchCompany handles PATCH /api/companies/{id}
func (h *CompanyHandler) PatchCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid company ID", nil)
		return
	}

	var req request.CompanyPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	company, err := h.service.PatchCompany(r.Context(), companyID, &req)
	if err != nil {
		h.handleServiceError(w, err, "patch company")
		return
	}

	utils.ResponseSuccess(w, "success", company)
}

// DeleteCompany handles DELETE /api/companies/{id}
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid company ID", nil)
		return
	}

	if err := h.service.DeleteCompany(r.Context(), companyID); err != nil {
		h.handleServiceError(w, err, "delete company")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps service errors for company operations
func (h *CompanyHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrCompanyNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrCompanyExists):
		h.log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
