package proration

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_RemainingDays(t *testing.T) {
	calc := NewCalculator()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "exact_five_days",
			start:    base,
			end:      base.AddDate(0, 0, 5),
			expected: 5,
		},
		{
			name:     "partial_day_rounds_up",
			start:    base,
			end:      base.Add(4*24*time.Hour + 12*time.Hour),
			expected: 5,
		},
		{
			name:     "one_millisecond_rounds_up",
			start:    base,
			end:      base.Add(time.Millisecond),
			expected: 1,
		},
		{
			name:     "zero_length_period",
			start:    base,
			end:      base,
			expected: 0,
		},
		{
			name:     "full_monthly_period",
			start:    base,
			end:      base.AddDate(0, 0, 30),
			expected: 30,
		},
		{
			name:     "full_yearly_period",
			start:    base,
			end:      base.AddDate(0, 0, 365),
			expected: 365,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.RemainingDays(tt.start, tt.end))
		})
	}
}

func TestCalculator_ProratedUpgradeAmount(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name          string
		currentPrice  decimal.Decimal
		newPrice      decimal.Decimal
		remainingDays int
		expected      decimal.Decimal
	}{
		{
			name:          "full_month_upgrade",
			currentPrice:  decimal.NewFromInt(20),
			newPrice:      decimal.NewFromInt(70),
			remainingDays: 30,
			expected:      decimal.NewFromInt(50),
		},
		{
			name:          "downgrade_clamps_to_zero",
			currentPrice:  decimal.NewFromInt(70),
			newPrice:      decimal.NewFromInt(20),
			remainingDays: 30,
			expected:      decimal.Zero,
		},
		{
			name:          "half_month_upgrade",
			currentPrice:  decimal.NewFromInt(30),
			newPrice:      decimal.NewFromInt(70),
			remainingDays: 15,
			expected:      decimal.NewFromInt(20),
		},
		{
			name:          "repeating_decimal_rounds_to_cents",
			currentPrice:  decimal.NewFromInt(10),
			newPrice:      decimal.NewFromInt(20),
			remainingDays: 7,
			// 10/30*7 = 2.333...
			expected: decimal.NewFromFloat(2.33),
		},
		{
			name:          "same_price_yields_zero",
			currentPrice:  decimal.NewFromInt(50),
			newPrice:      decimal.NewFromInt(50),
			remainingDays: 30,
			expected:      decimal.Zero,
		},
		{
			name:          "zero_remaining_days",
			currentPrice:  decimal.NewFromInt(20),
			newPrice:      decimal.NewFromInt(70),
			remainingDays: 0,
			expected:      decimal.Zero,
		},
		{
			name:          "yearly_cadence_still_prorates_against_30",
			currentPrice:  decimal.NewFromInt(30),
			newPrice:      decimal.NewFromInt(60),
			remainingDays: 365,
			expected:      decimal.NewFromInt(365),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ProratedUpgradeAmount(tt.currentPrice, tt.newPrice, tt.remainingDays)
			assert.True(t, tt.expected.Equal(got),
				"expected %s, got %s", tt.expected, got)
		})
	}
}
