package service

import (
	"github.com/subplane/subplane/internal/cache"
	"github.com/subplane/subplane/internal/config"
	"github.com/subplane/subplane/internal/domain/activation"
	"github.com/subplane/subplane/internal/domain/order"
	"github.com/subplane/subplane/internal/domain/plan"
	"github.com/subplane/subplane/internal/domain/proration"
	"github.com/subplane/subplane/internal/domain/subscription"
	"github.com/subplane/subplane/internal/domain/user"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache

	// Repositories
	UserRepo       user.Repository
	PlanRepo       plan.Repository
	SubRepo        subscription.Repository
	OrderRepo      order.Repository
	ActivationRepo activation.Repository

	// Domain helpers
	ProrationCalculator proration.Calculator
}

// NewServiceParams bundles the common service dependencies for fx
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	cache cache.Cache,
	userRepo user.Repository,
	planRepo plan.Repository,
	subRepo subscription.Repository,
	orderRepo order.Repository,
	activationRepo activation.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:              logger,
		Config:              config,
		DB:                  db,
		Cache:               cache,
		UserRepo:            userRepo,
		PlanRepo:            planRepo,
		SubRepo:             subRepo,
		OrderRepo:           orderRepo,
		ActivationRepo:      activationRepo,
		ProrationCalculator: proration.NewCalculator(),
	}
}
