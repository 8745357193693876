package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/cache"
	"github.com/subplane/subplane/internal/domain/plan"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
)

type PlanService interface {
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error)
	GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error)
	GetPlans(ctx context.Context, filter *types.PlanFilter) (*dto.ListPlansResponse, error)
	UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error)
}

type planService struct {
	ServiceParams
}

func NewPlanService(params ServiceParams) PlanService {
	return &planService{ServiceParams: params}
}

func (s *planService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToPlan(ctx)

	if err := s.PlanRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created plan",
		"plan_id", p.ID,
		"name", p.Name,
		"price", p.Price,
	)

	return dto.NewPlanResponse(p), nil
}

func (s *planService) GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error) {
	if id == "" {
		return nil, ierr.NewError("plan ID is required").
			WithHint("Please provide a valid plan ID").
			Mark(ierr.ErrValidation)
	}

	// Cache keys carry the tenant so a warm cache cannot serve one
	// tenant's plan to another
	cacheKey := cache.GenerateKey(cache.PrefixPlan, types.GetTenantID(ctx), id)

	if cached, found := s.Cache.Get(ctx, cacheKey); found {
		if p, ok := cached.(*plan.Plan); ok {
			return dto.NewPlanResponse(p), nil
		}
	}

	p, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, cacheKey, p, cache.DefaultExpiration)

	return dto.NewPlanResponse(p), nil
}

func (s *planService) GetPlans(ctx context.Context, filter *types.PlanFilter) (*dto.ListPlansResponse, error) {
	if filter == nil {
		filter = types.NewPlanFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	plans, err := s.PlanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.PlanRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(plans, func(p *plan.Plan, _ int) *dto.PlanResponse {
		return dto.NewPlanResponse(p)
	})

	response := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &response, nil
}

func (s *planService) UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Fields not supplied retain their prior value
	p.Name = lo.FromPtrOr(req.Name, p.Name)
	p.Price = lo.FromPtrOr(req.Price, p.Price)
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	if err := s.PlanRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixPlan, types.GetTenantID(ctx), id))

	s.Logger.Infow("updated plan",
		"plan_id", p.ID,
		"name", p.Name,
		"price", p.Price,
	)

	return dto.NewPlanResponse(p), nil
}

// requireAdmin resolves the requesting user and checks the admin flag.
// An unresolvable requester is a not-found error; a resolvable non-admin
// requester is a permission error. The two are deliberately kept
// distinct: plan existence is public catalog data, so there is nothing
// to hide by conflating them.
func (s *planService) requireAdmin(ctx context.Context) error {
	requester, err := s.UserRepo.GetByID(ctx, types.GetUserID(ctx))
	if err != nil {
		return err
	}

	if !requester.IsAdmin {
		return ierr.NewError("not admin user").
			WithHint("Admin access required").
			Mark(ierr.ErrPermissionDenied)
	}

	return nil
}
