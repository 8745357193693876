package service

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/domain/plan"
	"github.com/subplane/subplane/internal/domain/user"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/testutil"
	"github.com/subplane/subplane/internal/types"
)

type PlanServiceSuite struct {
	testutil.BaseServiceTestSuite
	planService PlanService
}

func TestPlanService(t *testing.T) {
	suite.Run(t, new(PlanServiceSuite))
}

func (s *PlanServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.planService = NewPlanService(ServiceParams{
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
}

func (s *PlanServiceSuite) seedRequester(isAdmin bool) {
	err := s.GetStores().UserRepo.Create(s.GetContext(), &user.User{
		ID:        types.DefaultUserID,
		Email:     "requester@example.com",
		IsAdmin:   isAdmin,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	})
	s.NoError(err)
}

func (s *PlanServiceSuite) TestCreatePlan() {
	s.Run("admin creates plan", func() {
		s.ClearStores()
		s.seedRequester(true)

		resp, err := s.planService.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
			Name:  "Pro",
			Price: decimal.NewFromInt(30),
		})
		s.NoError(err)
		s.NotNil(resp)
		s.True(resp.Success)
		s.Equal("Pro", resp.Plan.Name)
		s.True(resp.Plan.Price.Equal(decimal.NewFromInt(30)))

		stored, err := s.GetStores().PlanRepo.Get(s.GetContext(), resp.Plan.ID)
		s.NoError(err)
		s.Equal("Pro", stored.Name)
	})

	s.Run("non admin is rejected and nothing is stored", func() {
		s.ClearStores()
		s.seedRequester(false)

		resp, err := s.planService.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
			Name:  "Pro",
			Price: decimal.NewFromInt(30),
		})
		s.Error(err)
		s.Nil(resp)
		s.True(ierr.IsPermissionDenied(err))

		count, err := s.GetStores().PlanRepo.Count(s.GetContext(), types.NewPlanFilter())
		s.NoError(err)
		s.Equal(0, count)
	})

	s.Run("unknown requester yields not found, not permission denied", func() {
		s.ClearStores()

		_, err := s.planService.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
			Name:  "Pro",
			Price: decimal.NewFromInt(30),
		})
		s.Error(err)
		s.True(ierr.IsNotFound(err))
		s.False(ierr.IsPermissionDenied(err))
	})

	s.Run("negative price is rejected", func() {
		s.ClearStores()
		s.seedRequester(true)

		_, err := s.planService.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
			Name:  "Broken",
			Price: decimal.NewFromInt(-5),
		})
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})

	s.Run("missing name is rejected", func() {
		s.ClearStores()
		s.seedRequester(true)

		_, err := s.planService.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
			Price: decimal.NewFromInt(30),
		})
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})
}

func (s *PlanServiceSuite) TestGetPlan() {
	s.Run("existing plan", func() {
		s.ClearStores()
		p := &plan.Plan{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
			Name:      "Starter",
			Price:     decimal.NewFromInt(10),
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		}
		s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), p))

		resp, err := s.planService.GetPlan(s.GetContext(), p.ID)
		s.NoError(err)
		s.True(resp.Success)
		s.Equal(p.ID, resp.Plan.ID)

		// Second read hits the cache
		resp, err = s.planService.GetPlan(s.GetContext(), p.ID)
		s.NoError(err)
		s.Equal(p.ID, resp.Plan.ID)
	})

	s.Run("warm cache does not leak across tenants", func() {
		s.ClearStores()
		p := &plan.Plan{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
			Name:      "Starter",
			Price:     decimal.NewFromInt(10),
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		}
		s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), p))

		// Warm the cache as the owning tenant
		_, err := s.planService.GetPlan(s.GetContext(), p.ID)
		s.NoError(err)

		// The same ID read under another tenant must miss both the
		// cache and the store
		otherCtx := context.WithValue(s.GetContext(), types.CtxTenantID, "tenant_other")
		_, err = s.planService.GetPlan(otherCtx, p.ID)
		s.Error(err)
		s.True(ierr.IsNotFound(err))
	})

	s.Run("missing plan", func() {
		s.ClearStores()
		_, err := s.planService.GetPlan(s.GetContext(), "plan_missing")
		s.Error(err)
		s.True(ierr.IsNotFound(err))
	})

	s.Run("empty id", func() {
		_, err := s.planService.GetPlan(s.GetContext(), "")
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})
}

func (s *PlanServiceSuite) TestGetPlans() {
	s.ClearStores()
	for _, name := range []string{"Starter", "Pro", "Enterprise"} {
		s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), &plan.Plan{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
			Name:      name,
			Price:     decimal.NewFromInt(10),
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		}))
	}

	resp, err := s.planService.GetPlans(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 3)
	s.Equal(3, resp.Pagination.Total)

	limited, err := s.planService.GetPlans(s.GetContext(), &types.PlanFilter{
		QueryFilter: &types.QueryFilter{Limit: lo.ToPtr(2)},
	})
	s.NoError(err)
	s.Len(limited.Items, 2)
}

func (s *PlanServiceSuite) TestUpdatePlan() {
	s.Run("admin updates price", func() {
		s.ClearStores()
		s.seedRequester(true)

		p := &plan.Plan{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
			Name:      "Starter",
			Price:     decimal.NewFromInt(10),
			BaseModel: types.GetDefaultBaseModel(s.GetContext()),
		}
		s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), p))

		resp, err := s.planService.UpdatePlan(s.GetContext(), p.ID, dto.UpdatePlanRequest{
			Price: lo.ToPtr(decimal.NewFromInt(15)),
		})
		s.NoError(err)
		s.True(resp.Plan.Price.Equal(decimal.NewFromInt(15)))
		// Name was not supplied and must be preserved
		s.Equal("Starter", resp.Plan.Name)
	})

	s.Run("non admin cannot update", func() {
		s.ClearStores()
		s.seedRequester(false)

		_, err := s.planService.UpdatePlan(s.GetContext(), "plan_x", dto.UpdatePlanRequest{
			Name: lo.ToPtr("Renamed"),
		})
		s.Error(err)
		s.True(ierr.IsPermissionDenied(err))
	})

	s.Run("update without fields is rejected", func() {
		s.ClearStores()
		s.seedRequester(true)

		_, err := s.planService.UpdatePlan(s.GetContext(), "plan_x", dto.UpdatePlanRequest{})
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})

	s.Run("missing plan", func() {
		s.ClearStores()
		s.seedRequester(true)

		_, err := s.planService.UpdatePlan(s.GetContext(), "plan_missing", dto.UpdatePlanRequest{
			Name: lo.ToPtr("Renamed"),
		})
		s.Error(err)
		s.True(ierr.IsNotFound(err))
	})
}
