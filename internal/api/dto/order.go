package dto

import (
	"github.com/shopspring/decimal"
	"github.com/subplane/subplane/internal/domain/order"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
	"github.com/subplane/subplane/internal/validator"
)

type CreateOrderRequest struct {
	SubscriptionID string          `json:"subscription_id" validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
}

func (r *CreateOrderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if r.Amount.IsNegative() {
		return ierr.NewError("amount must not be negative").
			WithHint("Order amount must be zero or positive").
			WithReportableDetails(map[string]any{
				"amount": r.Amount,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

type OrderResponse struct {
	Success bool `json:"success"`
	*order.Order
}

func NewOrderResponse(o *order.Order) *OrderResponse {
	return &OrderResponse{Success: true, Order: o}
}

// ListOrdersResponse represents the response for listing orders
type ListOrdersResponse = types.ListResponse[*OrderResponse]
