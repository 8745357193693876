package dto

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/subplane/subplane/internal/domain/plan"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
	"github.com/subplane/subplane/internal/validator"
)

type CreatePlanRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

func (r *CreatePlanRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if r.Price.IsNegative() {
		return ierr.NewError("price must not be negative").
			WithHint("Please provide a non-negative plan price").
			WithReportableDetails(map[string]any{
				"price": r.Price,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

func (r *CreatePlanRequest) ToPlan(ctx context.Context) *plan.Plan {
	return &plan.Plan{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:      r.Name,
		Price:     r.Price,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePlanRequest struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

func (r *UpdatePlanRequest) Validate() error {
	if r.Name == nil && r.Price == nil {
		return ierr.NewError("no fields to update").
			WithHint("Provide a name or a price to update").
			Mark(ierr.ErrValidation)
	}

	if r.Name != nil && *r.Name == "" {
		return ierr.NewError("name must not be empty").
			WithHint("Plan name must not be empty").
			Mark(ierr.ErrValidation)
	}

	if r.Price != nil && r.Price.IsNegative() {
		return ierr.NewError("price must not be negative").
			WithHint("Please provide a non-negative plan price").
			WithReportableDetails(map[string]any{
				"price": r.Price,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

type PlanResponse struct {
	Success bool `json:"success"`
	*plan.Plan
}

func NewPlanResponse(p *plan.Plan) *PlanResponse {
	return &PlanResponse{Success: true, Plan: p}
}

// ListPlansResponse represents the response for listing plans
type ListPlansResponse = types.ListResponse[*PlanResponse]
