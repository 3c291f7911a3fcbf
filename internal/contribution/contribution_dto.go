package contribution

import "github.com/shopspring/decimal"

// CreateContributionRequest takes explicit amounts, or a percentage of the
// employee's salary applied to whichever share is omitted.
type CreateContributionRequest struct {
	EmployeeID     string           `json:"employee_id" binding:"required,uuid"`
	MonthYear      string           `json:"month_year" binding:"required,monthyear"`
	EmployeeAmount *decimal.Decimal `json:"employee_amount"`
	EmployerAmount *decimal.Decimal `json:"employer_amount"`
	Percentage     *decimal.Decimal `json:"percentage"`
	Notes          *string          `json:"notes" binding:"omitempty,max=1000"`
	Status         string           `json:"status" binding:"omitempty,oneof=active inactive"`
}

type BulkCreateContributionRequest struct {
	Items []CreateContributionRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

type UpdateContributionRequest struct {
	EmployeeAmount *decimal.Decimal `json:"employee_amount"`
	EmployerAmount *decimal.Decimal `json:"employer_amount"`
	Notes          *string          `json:"notes" binding:"omitempty,max=1000"`
	Status         *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	MonthYear  string `form:"month_year" binding:"omitempty,monthyear"`
	Status     string `form:"status" binding:"omitempty,oneof=active inactive"`
}

type ContributionResponse struct {
	ID             string           `json:"id"`
	Scheme         string           `json:"scheme"`
	EmployeeID     string           `json:"employee_id"`
	MonthYear      string           `json:"month_year"`
	EmployeeAmount decimal.Decimal  `json:"employee_amount"`
	EmployerAmount decimal.Decimal  `json:"employer_amount"`
	Total          decimal.Decimal  `json:"total"`
	Percentage     *decimal.Decimal `json:"percentage,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	Status         string           `json:"status"`
	CreatedByID    string           `json:"created_by_id,omitempty"`
	UpdatedByID    string           `json:"updated_by_id,omitempty"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}
