package subscription

import (
	"time"

	"github.com/subplane/subplane/internal/types"
)

// Subscription is a team's enrollment in a plan for a bounded period.
type Subscription struct {
	// ID is the unique identifier for the subscription
	ID string `db:"id" json:"id"`

	// Name is the caller-supplied label for the subscription
	Name string `db:"name" json:"name"`

	// TeamID is the identifier of the owning team. Teams live in an
	// external service; the reference is by stable identity only.
	TeamID string `db:"team_id" json:"team_id"`

	// PlanID is the identifier for the plan in our system
	PlanID string `db:"plan_id" json:"plan_id"`

	// BillingCadence determines the fixed period length
	BillingCadence types.BillingCadence `db:"billing_cadence" json:"billing_cadence"`

	// StartDate is the start of the current billing period
	StartDate time.Time `db:"start_date" json:"start_date"`

	// EndDate is the end of the current billing period, always after StartDate
	EndDate time.Time `db:"end_date" json:"end_date"`

	// IsActive reports whether the subscription is currently in force
	IsActive bool `db:"is_active" json:"is_active"`

	types.BaseModel
}
