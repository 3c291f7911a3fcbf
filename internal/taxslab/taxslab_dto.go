package taxslab

import "github.com/shopspring/decimal"

type CreateTaxSlabRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=150"`
	FiscalYear  string           `json:"fiscal_year" binding:"required,min=4,max=9"`
	MinIncome   decimal.Decimal  `json:"min_income"`
	MaxIncome   *decimal.Decimal `json:"max_income"`
	Rate        decimal.Decimal  `json:"rate"`
	FixedAmount decimal.Decimal  `json:"fixed_amount"`
	Status      string           `json:"status" binding:"omitempty,oneof=active inactive"`
}

type BulkCreateTaxSlabRequest struct {
	Items []CreateTaxSlabRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

type UpdateTaxSlabRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=150"`
	FiscalYear  *string          `json:"fiscal_year" binding:"omitempty,min=4,max=9"`
	MinIncome   *decimal.Decimal `json:"min_income"`
	MaxIncome   *decimal.Decimal `json:"max_income"`
	Rate        *decimal.Decimal `json:"rate"`
	FixedAmount *decimal.Decimal `json:"fixed_amount"`
	Status      *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListFilter struct {
	FiscalYear string `form:"fiscal_year" binding:"omitempty,max=9"`
	Status     string `form:"status" binding:"omitempty,oneof=active inactive"`
}

type TaxSlabResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	FiscalYear  string           `json:"fiscal_year"`
	MinIncome   decimal.Decimal  `json:"min_income"`
	MaxIncome   *decimal.Decimal `json:"max_income"`
	Rate        decimal.Decimal  `json:"rate"`
	FixedAmount decimal.Decimal  `json:"fixed_amount"`
	Status      string           `json:"status"`
	CreatedByID string           `json:"created_by_id,omitempty"`
	UpdatedByID string           `json:"updated_by_id,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}
