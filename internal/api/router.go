package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/subplane/subplane/internal/api/v1"
	"github.com/subplane/subplane/internal/config"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/rest/middleware"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Plan         *v1.PlanHandler
	Subscription *v1.SubscriptionHandler
	Order        *v1.OrderHandler
	Activation   *v1.ActivationHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(),
		gin.Recovery(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes behind authentication
	v1Group := router.Group("/v1", middleware.AuthenticateMiddleware(cfg, log))
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Plan routes
	plans := router.Group("/plans")
	{
		plans.POST("", handlers.Plan.CreatePlan)
		plans.GET("", handlers.Plan.GetPlans)
		plans.GET("/:id", handlers.Plan.GetPlan)
		plans.PUT("/:id", handlers.Plan.UpdatePlan)
	}

	// Subscription routes
	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.POST("", handlers.Subscription.CreateSubscription)
		subscriptions.GET("/:id", handlers.Subscription.GetSubscription)
		subscriptions.POST("/upgrade-price", handlers.Subscription.CalculateUpgradePrice)
	}

	// Order routes
	orders := router.Group("/orders")
	{
		orders.POST("", handlers.Order.CreateOrder)
		orders.GET("", handlers.Order.ListOrders)
		orders.GET("/:id", handlers.Order.GetOrder)
	}

	// Activation routes
	activations := router.Group("/activations")
	{
		activations.POST("", handlers.Activation.CreateActivation)
		activations.GET("/:id", handlers.Activation.GetActivation)
	}
}
