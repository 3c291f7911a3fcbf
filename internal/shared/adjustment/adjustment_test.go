package adjustment_test

import (
	"testing"

	"speed-hrm/internal/shared/adjustment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	d := decimal.NewFromInt

	tests := []struct {
		name     string
		method   adjustment.Method
		existing decimal.Decimal
		incoming decimal.Decimal
		want     decimal.Decimal
	}{
		{"distributed adds", adjustment.DistributedRemainingMonths, d(1000), d(500), d(1500)},
		{"deduct subtracts", adjustment.DeductCurrentMonth, d(1000), d(500), d(500)},
		{"deduct clamps at zero", adjustment.DeductCurrentMonth, d(500), d(700), decimal.Zero},
		{"unknown is additive", adjustment.Method("something-else"), d(100), d(50), d(150)},
		{"empty is additive", "", d(100), d(50), d(150)},
		{"decimals", adjustment.DistributedRemainingMonths, decimal.RequireFromString("10.25"), decimal.RequireFromString("0.75"), d(11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustment.Apply(tt.method, tt.existing, tt.incoming)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestApply_SequentialBonus(t *testing.T) {
	amount := decimal.NewFromInt(1000)
	amount = adjustment.Apply(adjustment.DistributedRemainingMonths, amount, decimal.NewFromInt(500))
	assert.Equal(t, "1500", amount.String())

	amount = decimal.NewFromInt(1000)
	amount = adjustment.Apply(adjustment.DeductCurrentMonth, amount, decimal.NewFromInt(500))
	assert.Equal(t, "500", amount.String())
	amount = adjustment.Apply(adjustment.DeductCurrentMonth, amount, decimal.NewFromInt(700))
	assert.Equal(t, "0", amount.String())
}

func TestValid(t *testing.T) {
	assert.True(t, adjustment.Valid("distributed-remaining-months"))
	assert.True(t, adjustment.Valid("deduct-current-month"))
	assert.False(t, adjustment.Valid(""))
	assert.False(t, adjustment.Valid("monthly"))
}
