package entity

type Company struct {
	CompanyID int64  `db:"company_id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	Country   string `db:"country"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
}
