package deduction

import "github.com/shopspring/decimal"

type DeductionItemRequest struct {
	EmployeeID       string           `json:"employee_id" binding:"required,uuid"`
	DeductionHeadID  string           `json:"deduction_head_id" binding:"required,uuid"`
	Amount           *decimal.Decimal `json:"amount" binding:"required"`
	Month            int              `json:"month" binding:"required,min=1,max=12"`
	Year             int              `json:"year" binding:"required,min=2000,max=2100"`
	AdjustmentMethod string           `json:"adjustment_method" binding:"omitempty,max=40"`
	Notes            *string          `json:"notes" binding:"omitempty,max=1000"`
	Status           string           `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateDeductionRequest struct {
	Items []DeductionItemRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

type UpdateDeductionRequest struct {
	Amount           *decimal.Decimal `json:"amount"`
	AdjustmentMethod *string          `json:"adjustment_method" binding:"omitempty,max=40"`
	Notes            *string          `json:"notes" binding:"omitempty,max=1000"`
	Status           *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListFilter struct {
	EmployeeID      string `form:"employee_id" binding:"omitempty,uuid"`
	DeductionHeadID string `form:"deduction_head_id" binding:"omitempty,uuid"`
	Month           int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year            int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Status          string `form:"status" binding:"omitempty,oneof=active inactive"`
}

type DeductionResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeCode     string          `json:"employee_code,omitempty"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	DeductionHeadID  string          `json:"deduction_head_id"`
	Amount           decimal.Decimal `json:"amount"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Period           string          `json:"period"`
	AdjustmentMethod string          `json:"adjustment_method,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Status           string          `json:"status"`
	CreatedByID      string          `json:"created_by_id,omitempty"`
	UpdatedByID      string          `json:"updated_by_id,omitempty"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type CreateDeductionResult struct {
	Created int                 `json:"created"`
	Merged  int                 `json:"merged"`
	Items   []DeductionResponse `json:"items"`
}
