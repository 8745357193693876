package proration

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subplane/subplane/internal/types"
)

// MonetaryPrecision is the number of decimal places prorated amounts are
// rounded to. Proration divides by a fixed 30-day month, so raw results
// carry repeating decimals; a single rounding policy here keeps every
// recorded order consistent.
const MonetaryPrecision = 2

// Calculator computes remaining time and prorated charges for mid-cycle
// plan changes. It is stateless and safe for concurrent use.
type Calculator interface {
	RemainingDays(periodStart, periodEnd time.Time) int
	ProratedUpgradeAmount(currentPrice, newPrice decimal.Decimal, remainingDays int) decimal.Decimal
}

type dayBasedCalculator struct{}

// NewCalculator returns the day-based proration calculator.
func NewCalculator() Calculator {
	return &dayBasedCalculator{}
}

// RemainingDays returns the number of days between periodStart and
// periodEnd, rounding any partial day up. A 4.5 day window counts as 5
// days: a started day is a billable day.
func (c *dayBasedCalculator) RemainingDays(periodStart, periodEnd time.Time) int {
	remainingMillis := periodEnd.UnixMilli() - periodStart.UnixMilli()

	days := remainingMillis / types.MillisPerDay
	if remainingMillis%types.MillisPerDay != 0 {
		days++
	}
	return int(days)
}

// ProratedUpgradeAmount computes the extra charge for switching from
// currentPrice to newPrice with remainingDays left in the period. The
// difference is always prorated against a fixed 30-day month regardless
// of cadence. Downgrades never produce a refund: negative results clamp
// to zero.
func (c *dayBasedCalculator) ProratedUpgradeAmount(currentPrice, newPrice decimal.Decimal, remainingDays int) decimal.Decimal {
	diff := newPrice.Sub(currentPrice)

	prorated := diff.
		Div(decimal.NewFromInt(types.DaysPerMonth)).
		Mul(decimal.NewFromInt(int64(remainingDays))).
		Round(MonetaryPrecision)

	if prorated.IsNegative() {
		return decimal.Zero
	}
	return prorated
}
