package types

import (
	"testing"
	"time"
)

func TestParseBillingCadence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BillingCadence
		wantErr bool
	}{
		{name: "lowercase monthly", input: "monthly", want: BILLING_CADENCE_MONTHLY},
		{name: "lowercase yearly", input: "yearly", want: BILLING_CADENCE_YEARLY},
		{name: "uppercase is normalised", input: "MONTHLY", want: BILLING_CADENCE_MONTHLY},
		{name: "mixed case is normalised", input: "Yearly", want: BILLING_CADENCE_YEARLY},
		{name: "surrounding whitespace is trimmed", input: "  monthly ", want: BILLING_CADENCE_MONTHLY},
		{name: "unknown cadence", input: "weekly", wantErr: true},
		{name: "empty cadence", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBillingCadence(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBillingCadence(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBillingCadence(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBillingCadence(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBillingCadencePeriodDuration(t *testing.T) {
	tests := []struct {
		name    string
		cadence BillingCadence
		want    time.Duration
	}{
		{name: "monthly is thirty days", cadence: BILLING_CADENCE_MONTHLY, want: 30 * 24 * time.Hour},
		{name: "yearly is 365 days", cadence: BILLING_CADENCE_YEARLY, want: 365 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cadence.PeriodDuration(); got != tt.want {
				t.Errorf("PeriodDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
