package dto

import (
	"github.com/subplane/subplane/internal/domain/order"
	"github.com/subplane/subplane/internal/domain/subscription"
	"github.com/subplane/subplane/internal/validator"
)

type CreateSubscriptionRequest struct {
	Name   string `json:"name" validate:"required"`
	TeamID string `json:"team_id" validate:"required"`
	PlanID string `json:"plan_id" validate:"required"`
	// Cadence accepts monthly or yearly in any casing
	Cadence string `json:"cadence" validate:"required"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// SubscriptionResponse carries a subscription together with the initial
// order created alongside it.
type SubscriptionResponse struct {
	Success      bool                       `json:"success"`
	Subscription *subscription.Subscription `json:"subscription"`
	Order        *order.Order               `json:"order,omitempty"`
}

func NewSubscriptionResponse(sub *subscription.Subscription, o *order.Order) *SubscriptionResponse {
	return &SubscriptionResponse{
		Success:      true,
		Subscription: sub,
		Order:        o,
	}
}
