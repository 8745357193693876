package service

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/domain/plan"
	"github.com/subplane/subplane/internal/domain/proration"
	"github.com/subplane/subplane/internal/domain/subscription"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/testutil"
	"github.com/subplane/subplane/internal/types"
)

type BillingServiceSuite struct {
	testutil.BaseServiceTestSuite
	billingService BillingService
	basicPlan      *plan.Plan
	proPlan        *plan.Plan
	sub            *subscription.Subscription
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.billingService = NewBillingService(ServiceParams{
		Logger:              s.GetLogger(),
		Config:              s.GetConfig(),
		DB:                  s.GetDB(),
		Cache:               s.GetCache(),
		UserRepo:            s.GetStores().UserRepo,
		PlanRepo:            s.GetStores().PlanRepo,
		SubRepo:             s.GetStores().SubRepo,
		OrderRepo:           s.GetStores().OrderRepo,
		ActivationRepo:      s.GetStores().ActivationRepo,
		ProrationCalculator: proration.NewCalculator(),
	})

	s.basicPlan = &plan.Plan{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:      "Basic",
		Price:     decimal.NewFromInt(30),
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.proPlan = &plan.Plan{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:      "Pro",
		Price:     decimal.NewFromInt(70),
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), s.basicPlan))
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), s.proPlan))

	now := time.Now().UTC()
	s.sub = &subscription.Subscription{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		Name:           "Acme workspace",
		TeamID:         "team_1",
		PlanID:         s.basicPlan.ID,
		BillingCadence: types.BILLING_CADENCE_MONTHLY,
		StartDate:      now,
		EndDate:        now.Add(30 * 24 * time.Hour),
		IsActive:       true,
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().SubRepo.Create(s.GetContext(), s.sub))
}

func (s *BillingServiceSuite) TestCalculateUpgradePrice() {
	s.Run("full period upgrade charges the price difference", func() {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(30 * 24 * time.Hour)

		resp, err := s.billingService.CalculateUpgradePrice(s.GetContext(), dto.CalculateUpgradePriceRequest{
			CurrentPlanID:  s.basicPlan.ID,
			NewPlanID:      s.proPlan.ID,
			SubscriptionID: s.sub.ID,
			PeriodStart:    start,
			PeriodEnd:      end,
		})
		s.NoError(err)
		s.True(resp.Success)
		// (70 - 30) / 30 * 30 remaining days
		s.True(resp.Amount.Equal(decimal.NewFromInt(40)), "amount was %s", resp.Amount)

		s.NotNil(resp.Order)
		s.Equal(s.sub.ID, resp.Order.SubscriptionID)
		s.True(resp.Order.Amount.Equal(resp.Amount))

		stored, err := s.GetStores().OrderRepo.Get(s.GetContext(), resp.Order.ID)
		s.NoError(err)
		s.True(stored.Amount.Equal(decimal.NewFromInt(40)))
	})

	s.Run("half period upgrade is prorated", func() {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(15 * 24 * time.Hour)

		resp, err := s.billingService.CalculateUpgradePrice(s.GetContext(), dto.CalculateUpgradePriceRequest{
			CurrentPlanID:  s.basicPlan.ID,
			NewPlanID:      s.proPlan.ID,
			SubscriptionID: s.sub.ID,
			PeriodStart:    start,
			PeriodEnd:      end,
		})
		s.NoError(err)
		// (70 - 30) / 30 * 15 remaining days
		s.True(resp.Amount.Equal(decimal.NewFromInt(20)), "amount was %s", resp.Amount)
	})

	s.Run("downgrade clamps to zero and still records an order", func() {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(30 * 24 * time.Hour)

		resp, err := s.billingService.CalculateUpgradePrice(s.GetContext(), dto.CalculateUpgradePriceRequest{
			CurrentPlanID:  s.proPlan.ID,
			NewPlanID:      s.basicPlan.ID,
			SubscriptionID: s.sub.ID,
			PeriodStart:    start,
			PeriodEnd:      end,
		})
		s.NoError(err)
		s.True(resp.Amount.IsZero())
		s.NotNil(resp.Order)
		s.True(resp.Order.Amount.IsZero())
	})

	s.Run("upgrade does not reassign the subscription plan", func() {
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(30 * 24 * time.Hour)

		_, err := s.billingService.CalculateUpgradePrice(s.GetContext(), dto.CalculateUpgradePriceRequest{
			CurrentPlanID:  s.basicPlan.ID,
			NewPlanID:      s.proPlan.ID,
			SubscriptionID: s.sub.ID,
			PeriodStart:    start,
			PeriodEnd:      end,
		})
		s.NoError(err)

		stored, err := s.GetStores().SubRepo.Get(s.GetContext(), s.sub.ID)
		s.NoError(err)
		s.Equal(s.basicPlan.ID, stored.PlanID)
	})

	s.Run("missing current plan", func() {
		_, err := s.billingService.CalculateUpgradePrice(s.GetContext(), dto.CalculateUpgradePriceRequest{
			CurrentPlanID:  "plan_missing",
			NewPlanID:      s.proPlan.ID,
			SubscriptionID: s.sub.ID,
			PeriodStart:    time.Now().UTC(),
			PeriodEnd:      time.Now().UTC().Add(24 * time.Hour),
		})
		s.Error(err)
		s.True(ierr.IsNotFound(err))
		s.Contains(errors.GetAllHints(err), "Current plan not found")
	})

	s.Run("missing new plan", func() {
		_, err := s.billingService.CalculateUpgradePrice(s.GetContext(), dto.CalculateUpgradePriceRequest{
			CurrentPlanID:  s.basicPlan.ID,
			NewPlanID:      "plan_missing",
			SubscriptionID: s.sub.ID,
			PeriodStart:    time.Now().UTC(),
			PeriodEnd:      time.Now().UTC().Add(24 * time.Hour),
		})
		s.Error(err)
		s.True(ierr.IsNotFound(err))
		s.Contains(errors.GetAllHints(err), "New plan not found")
	})

	s.Run("missing subscription", func() {
		_, err := s.billingService.CalculateUpgradePrice(s.GetContext(), dto.CalculateUpgradePriceRequest{
			CurrentPlanID:  s.basicPlan.ID,
			NewPlanID:      s.proPlan.ID,
			SubscriptionID: "subs_missing",
			PeriodStart:    time.Now().UTC(),
			PeriodEnd:      time.Now().UTC().Add(24 * time.Hour),
		})
		s.Error(err)
		s.True(ierr.IsNotFound(err))
	})

	s.Run("period end before start", func() {
		now := time.Now().UTC()
		_, err := s.billingService.CalculateUpgradePrice(s.GetContext(), dto.CalculateUpgradePriceRequest{
			CurrentPlanID:  s.basicPlan.ID,
			NewPlanID:      s.proPlan.ID,
			SubscriptionID: s.sub.ID,
			PeriodStart:    now,
			PeriodEnd:      now.Add(-24 * time.Hour),
		})
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})
}

func (s *BillingServiceSuite) TestCreateSubscriptionPassThrough() {
	resp, err := s.billingService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		Name:    "Acme workspace",
		TeamID:  "team_1",
		PlanID:  s.basicPlan.ID,
		Cadence: "monthly",
	})
	s.NoError(err)
	s.NotNil(resp.Subscription)
	s.NotNil(resp.Order)
	s.True(resp.Order.Amount.Equal(s.basicPlan.Price))
}
