package deduction

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const periodIndex = "uq_deduction_employee_head_period"

type Deduction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_deduction_employee_head_period,priority:1"`
	Employee         *EmployeeRef    `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:RESTRICT"`
	DeductionHeadID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_deduction_employee_head_period,priority:2"`
	Amount           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Month            int             `gorm:"not null;uniqueIndex:uq_deduction_employee_head_period,priority:3"`
	Year             int             `gorm:"not null;uniqueIndex:uq_deduction_employee_head_period,priority:4"`
	AdjustmentMethod string          `gorm:"size:40"`
	Notes            *string         `gorm:"type:text"`
	Status           string          `gorm:"size:20;not null;default:active"`
	model.Audit
}

func (Deduction) TableName() string {
	return "deductions"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
