package bonus

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentWithSalary = "with-salary"
	PaymentSeparate   = "separate"

	periodIndex = "uq_bonus_employee_type_period"
)

// Bonus is unique per employee, bonus type and month. Repeat submissions
// for the same period are merged into the existing row.
type Bonus struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID       uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_bonus_employee_type_period,priority:1"`
	Employee         *EmployeeRef     `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:RESTRICT"`
	BonusTypeID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_bonus_employee_type_period,priority:2"`
	Amount           decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	Percentage       *decimal.Decimal `gorm:"type:decimal(5,2)"`
	BonusMonthYear   string           `gorm:"size:7;not null;uniqueIndex:uq_bonus_employee_type_period,priority:3;index"`
	PaymentMethod    string           `gorm:"size:20;not null;default:with-salary"`
	AdjustmentMethod string           `gorm:"size:40"`
	Notes            *string          `gorm:"type:text"`
	Status           string           `gorm:"size:20;not null;default:active"`
	model.Audit
}

func (Bonus) TableName() string {
	return "bonuses"
}

type EmployeeRef struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeCode string          `gorm:"column:employee_code"`
	FullName     string          `gorm:"column:full_name"`
	Salary       decimal.Decimal `gorm:"column:salary"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
