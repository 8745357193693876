package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/subplane/subplane/internal/api"
	v1 "github.com/subplane/subplane/internal/api/v1"
	"github.com/subplane/subplane/internal/cache"
	"github.com/subplane/subplane/internal/config"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
	"github.com/subplane/subplane/internal/repository"
	"github.com/subplane/subplane/internal/sentry"
	"github.com/subplane/subplane/internal/service"
	"github.com/subplane/subplane/internal/types"
	"github.com/subplane/subplane/internal/validator"
	"go.uber.org/fx"
)

// @title Subplane API
// @version 1.0
// @description Subscription billing API
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.Initialize,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Repositories
			repository.NewUserRepository,
			repository.NewPlanRepository,
			repository.NewSubscriptionRepository,
			repository.NewOrderRepository,
			repository.NewActivationRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewPlanService,
			service.NewSubscriptionService,
			service.NewOrderService,
			service.NewActivationService,
			service.NewBillingService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	planService service.PlanService,
	subscriptionService service.SubscriptionService,
	orderService service.OrderService,
	activationService service.ActivationService,
	billingService service.BillingService,
) api.Handlers {
	return api.Handlers{
		Health:       v1.NewHealthHandler(logger),
		Plan:         v1.NewPlanHandler(planService, logger),
		Subscription: v1.NewSubscriptionHandler(subscriptionService, billingService, logger),
		Order:        v1.NewOrderHandler(orderService, logger),
		Activation:   v1.NewActivationHandler(activationService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.Close()
			return nil
		},
	})
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
