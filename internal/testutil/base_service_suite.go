package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/subplane/subplane/internal/cache"
	"github.com/subplane/subplane/internal/config"
	"github.com/subplane/subplane/internal/domain/activation"
	"github.com/subplane/subplane/internal/domain/order"
	"github.com/subplane/subplane/internal/domain/plan"
	"github.com/subplane/subplane/internal/domain/subscription"
	"github.com/subplane/subplane/internal/domain/user"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
	"github.com/subplane/subplane/internal/types"
	"github.com/subplane/subplane/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	UserRepo       user.Repository
	PlanRepo       plan.Repository
	SubRepo        subscription.Repository
	OrderRepo      order.Repository
	ActivationRepo activation.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Cache: config.CacheConfig{
			Enabled: true,
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.cache = cache.Initialize(s.config, s.logger)
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxTenantID, types.DefaultTenantID)
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	userStore := NewInMemoryUserStore()
	planStore := NewInMemoryPlanStore()
	subStore := NewInMemorySubscriptionStore()
	orderStore := NewInMemoryOrderStore()
	activationStore := NewInMemoryActivationStore()

	s.stores = Stores{
		UserRepo:       userStore,
		PlanRepo:       planStore,
		SubRepo:        subStore,
		OrderRepo:      orderStore,
		ActivationRepo: activationStore,
	}

	s.db = NewMockPostgresClient(s.logger,
		userStore.InMemoryStore,
		planStore.InMemoryStore,
		subStore.InMemoryStore,
		orderStore.InMemoryStore,
		activationStore.InMemoryStore,
	)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.UserRepo.(*InMemoryUserStore).Clear()
	s.stores.PlanRepo.(*InMemoryPlanStore).Clear()
	s.stores.SubRepo.(*InMemorySubscriptionStore).Clear()
	s.stores.OrderRepo.(*InMemoryOrderStore).Clear()
	s.stores.ActivationRepo.(*InMemoryActivationStore).Clear()
}

// ClearStores resets all in-memory stores
func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current UTC time for the test
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
