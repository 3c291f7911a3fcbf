package workinghours

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const nameIndex = "uq_working_hours_policies_name"

// Policy is a shift definition. At most one policy is the default.
type Policy struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"size:150;not null;uniqueIndex:uq_working_hours_policies_name"`
	StartTime    string          `gorm:"size:5;not null"`
	EndTime      string          `gorm:"size:5;not null"`
	GraceMinutes int             `gorm:"not null;default:0"`
	HalfDayHours decimal.Decimal `gorm:"type:decimal(4,2);not null;default:0"`
	IsDefault    bool            `gorm:"not null;default:false"`
	Status       string          `gorm:"size:20;not null;default:active"`
	model.Audit
}

func (Policy) TableName() string {
	return "working_hours_policies"
}
