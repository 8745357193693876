package order

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subplane/subplane/internal/types"
)

// Order is a recorded monetary charge tied to a subscription.
// Orders are immutable once created; corrections are recorded as new
// orders so the financial trail stays auditable.
type Order struct {
	ID string `db:"id" json:"id"`

	// ReferenceID is the short human-readable reference printed on
	// receipts, e.g. OR-XYZ12A8Q
	ReferenceID string `db:"reference_id" json:"reference_id"`

	// SubscriptionID references the subscription this charge belongs to
	SubscriptionID string `db:"subscription_id" json:"subscription_id"`

	// Amount is the charged amount; zero is valid (e.g. a fully clamped
	// downgrade proration), negative is not
	Amount decimal.Decimal `db:"amount" json:"amount"`

	// PaymentDate is when the charge was recorded
	PaymentDate time.Time `db:"payment_date" json:"payment_date"`

	types.BaseModel
}
