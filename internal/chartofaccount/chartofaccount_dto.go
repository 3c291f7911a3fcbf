package chartofaccount

import "github.com/shopspring/decimal"

type CreateAccountRequest struct {
	Code     string  `json:"code" binding:"required,min=1,max=30"`
	Name     string  `json:"name" binding:"required,min=1,max=150"`
	Type     string  `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	IsGroup  bool    `json:"is_group"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
	// ParentCode names the parent by code. In a bulk create it may point at
	// another item of the same batch.
	ParentCode *string          `json:"parent_code" binding:"omitempty,min=1,max=30,excluded_with=ParentID"`
	Balance    *decimal.Decimal `json:"balance"`
	IsActive   *bool            `json:"is_active"`
}

type BulkCreateAccountRequest struct {
	Items []CreateAccountRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

// UpdateAccountRequest moves an account to the root when ClearParent is set.
type UpdateAccountRequest struct {
	Code        *string          `json:"code" binding:"omitempty,min=1,max=30"`
	Name        *string          `json:"name" binding:"omitempty,min=1,max=150"`
	Type        *string          `json:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	IsGroup     *bool            `json:"is_group"`
	ParentID    *string          `json:"parent_id" binding:"omitempty,uuid"`
	ClearParent bool             `json:"clear_parent"`
	Balance     *decimal.Decimal `json:"balance"`
	IsActive    *bool            `json:"is_active"`
}

type ListFilter struct {
	Type     string `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentID string `form:"parent_id" binding:"omitempty,uuid"`
	IsGroup  *bool  `form:"is_group"`
	Search   string `form:"q"`
}

type AccountResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	IsGroup     bool            `json:"is_group"`
	ParentID    string          `json:"parent_id,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"is_active"`
	CreatedByID string          `json:"created_by_id,omitempty"`
	UpdatedByID string          `json:"updated_by_id,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type TreeNode struct {
	AccountResponse
	Children []TreeNode `json:"children,omitempty"`
}

type SeedResult struct {
	Created    int `json:"created"`
	Reparented int `json:"reparented"`
	Unchanged  int `json:"unchanged"`
}
