package calculator

import "github.com/shopspring/decimal"

// Epsilon is the currency-rounding tolerance in minor units. Differences of
// at most one cent are treated as rounding noise: absorbed during share
// resolution, ignored when partitioning balances.
const Epsilon int64 = 1

var (
	hundred = decimal.NewFromInt(100)
)

// Cents converts a decimal amount to integer minor units, rounding half away
// from zero at the second decimal place.
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// FromCents converts integer minor units back to a decimal amount.
func FromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
