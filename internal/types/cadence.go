package types

import (
	"strings"
	"time"

	ierr "github.com/subplane/subplane/internal/errors"
)

// BillingCadence is the billing cadence for a subscription ex monthly, yearly.
// Values are stored lower case; ParseBillingCadence normalizes input.
type BillingCadence string

const (
	BILLING_CADENCE_MONTHLY BillingCadence = "monthly"
	BILLING_CADENCE_YEARLY  BillingCadence = "yearly"
)

// Period lengths are fixed-duration approximations, not calendar aware.
// A monthly subscription always runs 30 days and a yearly one 365 days.
const (
	DaysPerMonth = 30
	DaysPerYear  = 365

	MillisPerDay = 24 * 60 * 60 * 1000
)

var cadencePeriodDays = map[BillingCadence]int{
	BILLING_CADENCE_MONTHLY: DaysPerMonth,
	BILLING_CADENCE_YEARLY:  DaysPerYear,
}

// ParseBillingCadence normalizes and validates a caller-supplied cadence value.
func ParseBillingCadence(value string) (BillingCadence, error) {
	cadence := BillingCadence(strings.ToLower(strings.TrimSpace(value)))
	if err := cadence.Validate(); err != nil {
		return "", err
	}
	return cadence, nil
}

func (c BillingCadence) Validate() error {
	if _, ok := cadencePeriodDays[c]; !ok {
		return ierr.NewError("invalid billing cadence").
			WithHintf("Billing cadence must be one of %q or %q", BILLING_CADENCE_MONTHLY, BILLING_CADENCE_YEARLY).
			WithReportableDetails(map[string]any{
				"cadence": string(c),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PeriodDays returns the fixed number of days a billing period spans.
func (c BillingCadence) PeriodDays() int {
	return cadencePeriodDays[c]
}

// PeriodDuration returns the fixed duration of a billing period.
func (c BillingCadence) PeriodDuration() time.Duration {
	return time.Duration(c.PeriodDays()) * 24 * time.Hour
}

func (c BillingCadence) String() string {
	return string(c)
}
