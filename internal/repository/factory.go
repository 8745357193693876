package repository

import (
	"github.com/subplane/subplane/internal/domain/activation"
	"github.com/subplane/subplane/internal/domain/order"
	"github.com/subplane/subplane/internal/domain/plan"
	"github.com/subplane/subplane/internal/domain/subscription"
	"github.com/subplane/subplane/internal/domain/user"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
	postgresRepo "github.com/subplane/subplane/internal/repository/postgres"
)

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return postgresRepo.NewUserRepository(db, logger)
}

func NewPlanRepository(db *postgres.DB, logger *logger.Logger) plan.Repository {
	return postgresRepo.NewPlanRepository(db, logger)
}

func NewSubscriptionRepository(db *postgres.DB, logger *logger.Logger) subscription.Repository {
	return postgresRepo.NewSubscriptionRepository(db, logger)
}

func NewOrderRepository(db *postgres.DB, logger *logger.Logger) order.Repository {
	return postgresRepo.NewOrderRepository(db, logger)
}

func NewActivationRepository(db *postgres.DB, logger *logger.Logger) activation.Repository {
	return postgresRepo.NewActivationRepository(db, logger)
}
