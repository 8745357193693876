package service

import (
	"context"
	"time"

	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/domain/order"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
)

// BillingService coordinates the plan, subscription and order services
// for flows that span more than one ledger.
type BillingService interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	CalculateUpgradePrice(ctx context.Context, req dto.CalculateUpgradePriceRequest) (*dto.UpgradePriceResponse, error)
}

type billingService struct {
	ServiceParams
	subscriptionService SubscriptionService
}

func NewBillingService(params ServiceParams) BillingService {
	return &billingService{
		ServiceParams:       params,
		subscriptionService: NewSubscriptionService(params),
	}
}

func (s *billingService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	return s.subscriptionService.CreateSubscription(ctx, req)
}

// CalculateUpgradePrice prices a mid-period plan upgrade and records an
// order for the prorated difference. The subscription itself is not
// touched here; plan reassignment is a separate concern.
func (s *billingService) CalculateUpgradePrice(ctx context.Context, req dto.CalculateUpgradePriceRequest) (*dto.UpgradePriceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	currentPlan, err := s.PlanRepo.Get(ctx, req.CurrentPlanID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Current plan not found").
				WithReportableDetails(map[string]any{
					"current_plan_id": req.CurrentPlanID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, err
	}

	newPlan, err := s.PlanRepo.Get(ctx, req.NewPlanID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("New plan not found").
				WithReportableDetails(map[string]any{
					"new_plan_id": req.NewPlanID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, err
	}

	sub, err := s.SubRepo.Get(ctx, req.SubscriptionID)
	if err != nil {
		return nil, err
	}

	remainingDays := s.ProrationCalculator.RemainingDays(req.PeriodStart, req.PeriodEnd)
	amount := s.ProrationCalculator.ProratedUpgradeAmount(currentPlan.Price, newPlan.Price, remainingDays)

	upgradeOrder := &order.Order{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
		ReferenceID:    types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_ORDER),
		SubscriptionID: sub.ID,
		Amount:         amount,
		PaymentDate:    time.Now().UTC(),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	if err := s.OrderRepo.Create(ctx, upgradeOrder); err != nil {
		return nil, err
	}

	s.Logger.Infow("calculated upgrade price",
		"subscription_id", sub.ID,
		"current_plan_id", currentPlan.ID,
		"new_plan_id", newPlan.ID,
		"remaining_days", remainingDays,
		"amount", amount,
		"order_id", upgradeOrder.ID,
	)

	return dto.NewUpgradePriceResponse(amount, upgradeOrder), nil
}
