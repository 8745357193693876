package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/domain/order"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/testutil"
	"github.com/subplane/subplane/internal/types"
)

type ActivationServiceSuite struct {
	testutil.BaseServiceTestSuite
	activationService ActivationService
	order             *order.Order
}

func TestActivationService(t *testing.T) {
	suite.Run(t, new(ActivationServiceSuite))
}

func (s *ActivationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.activationService = NewActivationService(ServiceParams{
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

	s.order = &order.Order{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
		SubscriptionID: "subs_1",
		Amount:         decimal.NewFromInt(30),
		PaymentDate:    time.Now().UTC(),
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().OrderRepo.Create(s.GetContext(), s.order))
}

func (s *ActivationServiceSuite) TestCreateActivation() {
	s.Run("valid activation", func() {
		resp, err := s.activationService.CreateActivation(s.GetContext(), dto.CreateActivationRequest{
			OrderID: s.order.ID,
		})
		s.NoError(err)
		s.True(resp.Success)
		s.Equal(s.order.ID, resp.Activation.OrderID)
		s.False(resp.Activation.ActivationDate.IsZero())

		stored, err := s.GetStores().ActivationRepo.Get(s.GetContext(), resp.Activation.ID)
		s.NoError(err)
		s.Equal(s.order.ID, stored.OrderID)
	})

	s.Run("unknown order", func() {
		_, err := s.activationService.CreateActivation(s.GetContext(), dto.CreateActivationRequest{
			OrderID: "ord_missing",
		})
		s.Error(err)
		s.True(ierr.IsNotFound(err))
	})

	s.Run("missing order id", func() {
		_, err := s.activationService.CreateActivation(s.GetContext(), dto.CreateActivationRequest{})
		s.Error(err)
		s.True(ierr.IsValidation(err))
	})
}

func (s *ActivationServiceSuite) TestGetActivation() {
	created, err := s.activationService.CreateActivation(s.GetContext(), dto.CreateActivationRequest{
		OrderID: s.order.ID,
	})
	s.NoError(err)

	resp, err := s.activationService.GetActivation(s.GetContext(), created.Activation.ID)
	s.NoError(err)
	s.Equal(created.Activation.ID, resp.Activation.ID)

	_, err = s.activationService.GetActivation(s.GetContext(), "act_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
