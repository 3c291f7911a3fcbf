package bonus

import "github.com/shopspring/decimal"

type BonusItemRequest struct {
	EmployeeID       string           `json:"employee_id" binding:"required,uuid"`
	BonusTypeID      string           `json:"bonus_type_id" binding:"required,uuid"`
	Amount           *decimal.Decimal `json:"amount"`
	Percentage       *decimal.Decimal `json:"percentage"`
	BonusMonthYear   string           `json:"bonus_month_year" binding:"required,monthyear"`
	PaymentMethod    string           `json:"payment_method" binding:"omitempty,oneof=with-salary separate"`
	AdjustmentMethod string           `json:"adjustment_method" binding:"omitempty,max=40"`
	Notes            *string          `json:"notes" binding:"omitempty,max=1000"`
	Status           string           `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateBonusRequest struct {
	Items []BonusItemRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

// UpdateBonusRequest never changes the period key of a row.
type UpdateBonusRequest struct {
	Amount           *decimal.Decimal `json:"amount"`
	PaymentMethod    *string          `json:"payment_method" binding:"omitempty,oneof=with-salary separate"`
	AdjustmentMethod *string          `json:"adjustment_method" binding:"omitempty,max=40"`
	Notes            *string          `json:"notes" binding:"omitempty,max=1000"`
	Status           *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListFilter struct {
	EmployeeID     string `form:"employee_id" binding:"omitempty,uuid"`
	BonusTypeID    string `form:"bonus_type_id" binding:"omitempty,uuid"`
	BonusMonthYear string `form:"bonus_month_year" binding:"omitempty,len=7"`
	Status         string `form:"status" binding:"omitempty,oneof=active inactive"`
}

type BonusResponse struct {
	ID               string           `json:"id"`
	EmployeeID       string           `json:"employee_id"`
	EmployeeCode     string           `json:"employee_code,omitempty"`
	EmployeeName     string           `json:"employee_name,omitempty"`
	BonusTypeID      string           `json:"bonus_type_id"`
	Amount           decimal.Decimal  `json:"amount"`
	Percentage       *decimal.Decimal `json:"percentage,omitempty"`
	BonusMonthYear   string           `json:"bonus_month_year"`
	PaymentMethod    string           `json:"payment_method"`
	AdjustmentMethod string           `json:"adjustment_method,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	Status           string           `json:"status"`
	CreatedByID      string           `json:"created_by_id,omitempty"`
	UpdatedByID      string           `json:"updated_by_id,omitempty"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

// CreateBonusResult reports which items were inserted and which were merged
// into an existing row for the same period.
type CreateBonusResult struct {
	Created int             `json:"created"`
	Merged  int             `json:"merged"`
	Items   []BonusResponse `json:"items"`
}
