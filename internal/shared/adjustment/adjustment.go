// Package adjustment merges a newly submitted amount into one that already
// exists for the same payroll period.
package adjustment

import "github.com/shopspring/decimal"

type Method string

const (
	DistributedRemainingMonths Method = "distributed-remaining-months"
	DeductCurrentMonth         Method = "deduct-current-month"
)

// Apply returns the amount stored after merging incoming into existing.
// Deducting never goes below zero. Unknown or empty methods are additive.
func Apply(method Method, existing, incoming decimal.Decimal) decimal.Decimal {
	switch method {
	case DeductCurrentMonth:
		result := existing.Sub(incoming)
		if result.IsNegative() {
			return decimal.Zero
		}
		return result
	default:
		return existing.Add(incoming)
	}
}

func Valid(method string) bool {
	switch Method(method) {
	case DistributedRemainingMonths, DeductCurrentMonth:
		return true
	}
	return false
}
