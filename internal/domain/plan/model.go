package plan

import (
	"github.com/shopspring/decimal"
	"github.com/subplane/subplane/internal/types"
)

// Plan is a named price tier that teams subscribe to.
type Plan struct {
	ID string `db:"id" json:"id"`

	// Name is the display name of the plan
	Name string `db:"name" json:"name"`

	// Price is the charge for one full billing period on this plan
	Price decimal.Decimal `db:"price" json:"price"`

	types.BaseModel
}
