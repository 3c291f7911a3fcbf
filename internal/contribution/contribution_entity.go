package contribution

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contribution is one employee's monthly share in a scheme. Every scheme
// has its own table with the same columns.
type Contribution struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	MonthYear      string           `gorm:"size:7;not null;index"`
	EmployeeAmount decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	EmployerAmount decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	Percentage     *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Notes          *string          `gorm:"type:text"`
	Status         string           `gorm:"size:20;not null;default:active"`
	model.Audit
}

type Scheme struct {
	Slug     string
	Table    string
	Resource string
	Label    string
}

func (s Scheme) PeriodIndex() string {
	return "uq_" + s.Table + "_employee_period"
}

func (s Scheme) EmployeeForeignKey() string {
	return "fk_" + s.Table + "_employee"
}

var (
	ProvidentFund = Scheme{Slug: "provident-funds", Table: "provident_funds", Resource: "provident_fund", Label: "Provident fund"}
	EOBI          = Scheme{Slug: "eobi", Table: "eobis", Resource: "eobi", Label: "EOBI"}
)

func Schemes() []Scheme {
	return []Scheme{ProvidentFund, EOBI}
}
