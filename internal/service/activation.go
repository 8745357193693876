package service

import (
	"context"
	"time"

	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/domain/activation"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
)

type ActivationService interface {
	CreateActivation(ctx context.Context, req dto.CreateActivationRequest) (*dto.ActivationResponse, error)
	GetActivation(ctx context.Context, id string) (*dto.ActivationResponse, error)
}

type activationService struct {
	ServiceParams
}

func NewActivationService(params ServiceParams) ActivationService {
	return &activationService{ServiceParams: params}
}

// CreateActivation acknowledges an order's effect. The order is resolved
// first so an activation can never point at nothing.
func (s *activationService) CreateActivation(ctx context.Context, req dto.CreateActivationRequest) (*dto.ActivationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.OrderRepo.Get(ctx, req.OrderID); err != nil {
		return nil, err
	}

	a := &activation.Activation{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ACTIVATION),
		OrderID:        req.OrderID,
		ActivationDate: time.Now().UTC(),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	if err := s.ActivationRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.Logger.Infow("created activation",
		"activation_id", a.ID,
		"order_id", a.OrderID,
	)

	return dto.NewActivationResponse(a), nil
}

func (s *activationService) GetActivation(ctx context.Context, id string) (*dto.ActivationResponse, error) {
	if id == "" {
		return nil, ierr.NewError("activation ID is required").
			WithHint("Please provide a valid activation ID").
			Mark(ierr.ErrValidation)
	}

	a, err := s.ActivationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewActivationResponse(a), nil
}
