package department

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:150;not null"`
	Code        *string   `gorm:"size:50;uniqueIndex:uq_departments_code"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"size:20;not null;default:active;index"`
	model.Audit
}
