package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/domain/plan"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/testutil"
	"github.com/subplane/subplane/internal/types"
)

type SubscriptionServiceSuite struct {
	testutil.BaseServiceTestSuite
	subscriptionService SubscriptionService
	plan                *plan.Plan
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

// txRecordingPlanRepo records whether Get ran inside a transaction
type txRecordingPlanRepo struct {
	plan.Repository
	getInTx bool
}

func (r *txRecordingPlanRepo) Get(ctx context.Context, id string) (*plan.Plan, error) {
	r.getInTx = testutil.InTransaction(ctx)
	return r.Repository.Get(ctx, id)
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.subscriptionService = NewSubscriptionService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		Cache:          s.GetCache(),
		UserRepo:       s.GetStores().UserRepo,
		PlanRepo:       s.GetStores().PlanRepo,
		SubRepo:        s.GetStores().SubRepo,
		OrderRepo:      s.GetStores().OrderRepo,
		ActivationRepo: s.GetStores().ActivationRepo,
	})

	s.plan = &plan.Plan{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:      "Pro",
		Price:     decimal.NewFromInt(30),
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), s.plan))
}

func (s *SubscriptionServiceSuite) TestCreateSubscription() {
	s.Run("monthly cadence spans thirty days", func() {
		resp, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "monthly",
		})
		s.NoError(err)
		s.True(resp.Success)

		sub := resp.Subscription
		s.True(sub.IsActive)
		s.Equal(types.BILLING_CADENCE_MONTHLY, sub.BillingCadence)
		s.Equal(30*24*time.Hour, sub.EndDate.Sub(sub.StartDate))
	})

	s.Run("yearly cadence spans 365 days", func() {
		resp, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "yearly",
		})
		s.NoError(err)
		s.Equal(365*24*time.Hour, resp.Subscription.EndDate.Sub(resp.Subscription.StartDate))
	})

	s.Run("cadence is normalised", func() {
		resp, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "MONTHLY",
		})
		s.NoError(err)
		s.Equal(types.BILLING_CADENCE_MONTHLY, resp.Subscription.BillingCadence)
	})

	s.Run("initial order matches plan price", func() {
		resp, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "monthly",
		})
		s.NoError(err)
		s.NotNil(resp.Order)
		s.Equal(resp.Subscription.ID, resp.Order.SubscriptionID)
		s.True(resp.Order.Amount.Equal(s.plan.Price))

		stored, err := s.GetStores().OrderRepo.Get(s.GetContext(), resp.Order.ID)
		s.NoError(err)
		s.True(stored.Amount.Equal(s.plan.Price))
	})

	s.Run("unknown plan", func() {
		_, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  "plan_missing",
			Cadence: "monthly",
		})
		s.Error(err)
		s.True(ierr.IsNotFound(err))
	})

	s.Run("invalid cadence", func() {
		_, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "weekly",
		})
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})

	s.Run("plan price is read inside the transaction", func() {
		recorder := &txRecordingPlanRepo{Repository: s.GetStores().PlanRepo}
		svc := NewSubscriptionService(ServiceParams{
			Logger:         s.GetLogger(),
			Config:         s.GetConfig(),
			DB:             s.GetDB(),
			Cache:          s.GetCache(),
			UserRepo:       s.GetStores().UserRepo,
			PlanRepo:       recorder,
			SubRepo:        s.GetStores().SubRepo,
			OrderRepo:      s.GetStores().OrderRepo,
			ActivationRepo: s.GetStores().ActivationRepo,
		})

		_, err := svc.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "monthly",
		})
		s.NoError(err)
		s.True(recorder.getInTx)
	})

	s.Run("failed order insert rolls back the subscription", func() {
		subStore := s.GetStores().SubRepo.(*testutil.InMemorySubscriptionStore)
		orderStore := s.GetStores().OrderRepo.(*testutil.InMemoryOrderStore)
		before := subStore.Size()

		orderStore.FailNextCreate(ierr.NewError("insert failed").Mark(ierr.ErrDatabase))

		_, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "monthly",
		})
		s.Error(err)
		s.Equal(before, subStore.Size())
	})
}

func (s *SubscriptionServiceSuite) TestGetSubscription() {
	s.Run("existing subscription", func() {
		created, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "monthly",
		})
		s.NoError(err)

		resp, err := s.subscriptionService.GetSubscription(s.GetContext(), created.Subscription.ID)
		s.NoError(err)
		s.Equal(created.Subscription.ID, resp.Subscription.ID)
	})

	s.Run("different tenant cannot read the subscription", func() {
		created, err := s.subscriptionService.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
			Name:    "Acme workspace",
			TeamID:  "team_1",
			PlanID:  s.plan.ID,
			Cadence: "monthly",
		})
		s.NoError(err)

		otherCtx := context.WithValue(s.GetContext(), types.CtxTenantID, "tenant_other")
		_, err = s.subscriptionService.GetSubscription(otherCtx, created.Subscription.ID)
		s.Error(err)
		s.True(ierr.IsNotFound(err))
	})

	s.Run("missing subscription", func() {
		_, err := s.subscriptionService.GetSubscription(s.GetContext(), "subs_missing")
		s.Error(err)
		s.True(ierr.IsNotFound(err))
	})

	s.Run("empty id", func() {
		_, err := s.subscriptionService.GetSubscription(s.GetContext(), "")
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})
}
