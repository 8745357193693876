package dto

import (
	"github.com/subplane/subplane/internal/domain/activation"
	"github.com/subplane/subplane/internal/validator"
)

type CreateActivationRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

func (r *CreateActivationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type ActivationResponse struct {
	Success bool `json:"success"`
	*activation.Activation
}

func NewActivationResponse(a *activation.Activation) *ActivationResponse {
	return &ActivationResponse{Success: true, Activation: a}
}
