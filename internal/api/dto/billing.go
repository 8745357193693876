package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subplane/subplane/internal/domain/order"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/validator"
)

type CalculateUpgradePriceRequest struct {
	CurrentPlanID  string    `json:"current_plan_id" validate:"required"`
	NewPlanID      string    `json:"new_plan_id" validate:"required"`
	SubscriptionID string    `json:"subscription_id" validate:"required"`
	PeriodStart    time.Time `json:"period_start" validate:"required"`
	PeriodEnd      time.Time `json:"period_end" validate:"required"`
}

func (r *CalculateUpgradePriceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if !r.PeriodEnd.After(r.PeriodStart) {
		return ierr.NewError("period end must be after period start").
			WithHint("Please provide a billing period with end after start").
			WithReportableDetails(map[string]any{
				"period_start": r.PeriodStart,
				"period_end":   r.PeriodEnd,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// UpgradePriceResponse carries the prorated upgrade amount and the order
// recording it.
type UpgradePriceResponse struct {
	Success bool            `json:"success"`
	Amount  decimal.Decimal `json:"amount"`
	Order   *order.Order    `json:"order"`
}

func NewUpgradePriceResponse(amount decimal.Decimal, o *order.Order) *UpgradePriceResponse {
	return &UpgradePriceResponse{
		Success: true,
		Amount:  amount,
		Order:   o,
	}
}
