package activation

import (
	"time"

	"github.com/subplane/subplane/internal/types"
)

// Activation records that an order's effect has been acknowledged,
// e.g. the subscription it paid for was switched on. Immutable.
type Activation struct {
	ID string `db:"id" json:"id"`

	// OrderID references the order being acknowledged
	OrderID string `db:"order_id" json:"order_id"`

	// ActivationDate is when the acknowledgment was recorded
	ActivationDate time.Time `db:"activation_date" json:"activation_date"`

	types.BaseModel
}
