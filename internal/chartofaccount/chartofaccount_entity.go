package chartofaccount

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	TypeAsset     AccountType = "ASSET"
	TypeLiability AccountType = "LIABILITY"
	TypeEquity    AccountType = "EQUITY"
	TypeIncome    AccountType = "INCOME"
	TypeExpense   AccountType = "EXPENSE"

	codeIndex = "uq_chart_of_accounts_code"
	parentFK  = "fk_chart_of_accounts_parent"
)

// Account is a node in the chart of accounts. Only group accounts have
// children.
type Account struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code     string          `gorm:"size:30;not null;uniqueIndex:uq_chart_of_accounts_code"`
	Name     string          `gorm:"size:150;not null"`
	Type     AccountType     `gorm:"size:20;not null;index"`
	IsGroup  bool            `gorm:"not null;default:false"`
	ParentID *uuid.UUID      `gorm:"type:uuid;index"`
	Parent   *Account        `gorm:"foreignKey:ParentID;references:ID"`
	Balance  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	IsActive bool            `gorm:"not null;default:true"`
	model.Audit
}

func (Account) TableName() string {
	return "chart_of_accounts"
}
