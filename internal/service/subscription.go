package service

import (
	"context"
	"time"

	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/domain/order"
	"github.com/subplane/subplane/internal/domain/subscription"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
)

type SubscriptionService interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	ServiceParams
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{ServiceParams: params}
}

// CreateSubscription derives the billing period from the cadence and
// records the subscription together with its initial order. The two
// inserts share one transaction: a subscription must never exist
// without the order that paid for it.
func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cadence, err := types.ParseBillingCadence(req.Cadence)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var sub *subscription.Subscription
	var initialOrder *order.Order

	// The plan is read inside the transaction so the price that fixes
	// the initial order amount comes from the same snapshot as the
	// writes it feeds
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		p, err := s.PlanRepo.Get(ctx, req.PlanID)
		if err != nil {
			return err
		}

		sub = &subscription.Subscription{
			ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
			Name:           req.Name,
			TeamID:         req.TeamID,
			PlanID:         p.ID,
			BillingCadence: cadence,
			StartDate:      now,
			EndDate:        now.Add(cadence.PeriodDuration()),
			IsActive:       true,
			BaseModel:      types.GetDefaultBaseModel(ctx),
		}

		initialOrder = &order.Order{
			ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
			ReferenceID:    types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_ORDER),
			SubscriptionID: sub.ID,
			Amount:         p.Price,
			PaymentDate:    now,
			BaseModel:      types.GetDefaultBaseModel(ctx),
		}

		if err := s.SubRepo.Create(ctx, sub); err != nil {
			return err
		}
		return s.OrderRepo.Create(ctx, initialOrder)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created subscription",
		"subscription_id", sub.ID,
		"team_id", sub.TeamID,
		"plan_id", sub.PlanID,
		"cadence", sub.BillingCadence,
		"order_id", initialOrder.ID,
		"amount", initialOrder.Amount,
	)

	return dto.NewSubscriptionResponse(sub, initialOrder), nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	if id == "" {
		return nil, ierr.NewError("subscription ID is required").
			WithHint("Please provide a valid subscription ID").
			Mark(ierr.ErrValidation)
	}

	sub, err := s.SubRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewSubscriptionResponse(sub, nil), nil
}
