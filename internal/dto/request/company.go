package request

type CompanyRequest struct {
	Code    string `json:"code" validate:"required,min=1,max=3"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Country string `json:"country" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=5,max=20"`
}

// CompanyPatchRequest carries only the fields present in the payload;
// nil fields are left untouched by the merge.
type CompanyPatchRequest struct {
	Code    *string `json:"code,omitempty" validate:"omitempty,min=1,max=3"`
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,min=2,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
}
