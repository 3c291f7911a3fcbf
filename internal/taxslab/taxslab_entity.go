package taxslab

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const yearMinIndex = "uq_tax_slabs_year_min"

// TaxSlab is one income band. A nil MaxIncome is the open top band.
type TaxSlab struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string           `gorm:"size:150;not null"`
	FiscalYear  string           `gorm:"size:9;not null;uniqueIndex:uq_tax_slabs_year_min,priority:1"`
	MinIncome   decimal.Decimal  `gorm:"type:decimal(18,2);not null;uniqueIndex:uq_tax_slabs_year_min,priority:2"`
	MaxIncome   *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Rate        decimal.Decimal  `gorm:"type:decimal(5,2);not null;default:0"`
	FixedAmount decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	Status      string           `gorm:"size:20;not null;default:active"`
	model.Audit
}

func (TaxSlab) TableName() string {
	return "tax_slabs"
}
