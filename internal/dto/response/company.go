package response

import (
	"airline-booking/internal/data/entity"
)

type CompanyResponse struct {
	CompanyID int64  `json:"company_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func CompanyToResponse(company *entity.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: company.CompanyID,
		Code:      company.Code,
		Name:      company.Name,
		Country:   company.Country,
		Email:     company.Email,
		Phone:     company.Phone,
	}
}
