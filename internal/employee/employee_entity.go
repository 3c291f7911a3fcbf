package employee

import (
	"time"

	"speed-hrm/internal/department"
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            uuid.UUID              `gorm:"type:uuid;primaryKey"`
	EmployeeCode  string                 `gorm:"size:30;not null;uniqueIndex:uq_employees_code"`
	FullName      string                 `gorm:"size:150;not null"`
	Email         string                 `gorm:"size:150;not null;uniqueIndex:uq_employees_email"`
	Phone         *string                `gorm:"size:30"`
	CNIC          *string                `gorm:"column:cnic;size:20"`
	DepartmentID  *uuid.UUID             `gorm:"type:uuid;index"`
	Department    *department.Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
	DesignationID *uuid.UUID             `gorm:"type:uuid;index"`
	Salary        decimal.Decimal        `gorm:"type:decimal(18,2);not null;default:0"`
	JoiningDate   time.Time              `gorm:"type:date;not null"`
	Status        string                 `gorm:"size:20;not null;default:active;index"`
	model.Audit
}

// EmployeeTransfer is one department or designation move. Rows are never
// updated.
type EmployeeTransfer struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Employee          *Employee  `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	FromDepartmentID  *uuid.UUID `gorm:"type:uuid"`
	ToDepartmentID    uuid.UUID  `gorm:"type:uuid;not null"`
	FromDesignationID *uuid.UUID `gorm:"type:uuid"`
	ToDesignationID   *uuid.UUID `gorm:"type:uuid"`
	EffectiveDate     time.Time  `gorm:"type:date;not null"`
	Reason            *string    `gorm:"type:text"`
	CreatedByID       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
}
