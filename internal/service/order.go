package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/subplane/subplane/internal/api/dto"
	"github.com/subplane/subplane/internal/domain/order"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error)
	ListOrders(ctx context.Context, filter *types.OrderFilter) (*dto.ListOrdersResponse, error)
}

type orderService struct {
	ServiceParams
}

func NewOrderService(params ServiceParams) OrderService {
	return &orderService{ServiceParams: params}
}

// CreateOrder records an ad-hoc charge against a subscription. The
// subscription is resolved first so an order can never point at nothing.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.SubRepo.Get(ctx, req.SubscriptionID); err != nil {
		return nil, err
	}

	o := &order.Order{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
		ReferenceID:    types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_ORDER),
		SubscriptionID: req.SubscriptionID,
		Amount:         req.Amount,
		PaymentDate:    time.Now().UTC(),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	if err := s.OrderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.Logger.Infow("created order",
		"order_id", o.ID,
		"subscription_id", o.SubscriptionID,
		"amount", o.Amount,
	)

	return dto.NewOrderResponse(o), nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	if id == "" {
		return nil, ierr.NewError("order ID is required").
			WithHint("Please provide a valid order ID").
			Mark(ierr.ErrValidation)
	}

	o, err := s.OrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewOrderResponse(o), nil
}

func (s *orderService) ListOrders(ctx context.Context, filter *types.OrderFilter) (*dto.ListOrdersResponse, error) {
	if filter == nil {
		filter = types.NewOrderFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	orders, err := s.OrderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.OrderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(orders, func(o *order.Order, _ int) *dto.OrderResponse {
		return dto.NewOrderResponse(o)
	})

	response := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &response, nil
}
