package workinghours

import "github.com/shopspring/decimal"

type CreatePolicyRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=150"`
	StartTime    string          `json:"start_time" binding:"required,clock"`
	EndTime      string          `json:"end_time" binding:"required,clock"`
	GraceMinutes int             `json:"grace_minutes" binding:"omitempty,min=0,max=240"`
	HalfDayHours decimal.Decimal `json:"half_day_hours"`
	IsDefault    bool            `json:"is_default"`
	Status       string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdatePolicyRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=150"`
	StartTime    *string          `json:"start_time" binding:"omitempty,clock"`
	EndTime      *string          `json:"end_time" binding:"omitempty,clock"`
	GraceMinutes *int             `json:"grace_minutes" binding:"omitempty,min=0,max=240"`
	HalfDayHours *decimal.Decimal `json:"half_day_hours"`
	IsDefault    *bool            `json:"is_default"`
	Status       *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

type PolicyResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	GraceMinutes int             `json:"grace_minutes"`
	HalfDayHours decimal.Decimal `json:"half_day_hours"`
	IsDefault    bool            `json:"is_default"`
	Status       string          `json:"status"`
	CreatedByID  string          `json:"created_by_id,omitempty"`
	UpdatedByID  string          `json:"updated_by_id,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}
