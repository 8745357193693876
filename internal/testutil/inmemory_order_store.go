package testutil

import (
	"context"
	"fmt"

	"github.com/subplane/subplane/internal/domain/order"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/types"
)

// InMemoryOrderStore implements order.Repository
type InMemoryOrderStore struct {
	*InMemoryStore[*order.Order]

	// createErr, when set, makes the next Create fail. Used to assert
	// transactional rollback behaviour.
	createErr error
}

// NewInMemoryOrderStore creates a new in-memory order store
func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		InMemoryStore: NewInMemoryStore[*order.Order](),
	}
}

// FailNextCreate makes subsequent Create calls return err
func (s *InMemoryOrderStore) FailNextCreate(err error) {
	s.createErr = err
}

// orderFilterFn implements filtering logic for orders
func orderFilterFn(ctx context.Context, o *order.Order, filter interface{}) bool {
	if o == nil {
		return false
	}

	if tenantID, ok := ctx.Value(types.CtxTenantID).(string); ok {
		if o.TenantID != tenantID {
			return false
		}
	}

	f, ok := filter.(*types.OrderFilter)
	if !ok {
		return true
	}

	if f.SubscriptionID != "" && o.SubscriptionID != f.SubscriptionID {
		return false
	}

	return true
}

// orderSortFn implements sorting logic for orders
func orderSortFn(i, j *order.Order) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryOrderStore) Create(ctx context.Context, o *order.Order) error {
	if o == nil {
		return fmt.Errorf("order cannot be nil")
	}
	if s.createErr != nil {
		err := s.createErr
		s.createErr = nil
		return err
	}
	return s.InMemoryStore.Create(ctx, o.ID, o)
}

func (s *InMemoryOrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || o.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("order not found").
			WithHint("Order not found").
			WithReportableDetails(map[string]any{"order_id": id}).
			Mark(ierr.ErrNotFound)
	}
	return o, nil
}

func (s *InMemoryOrderStore) List(ctx context.Context, filter *types.OrderFilter) ([]*order.Order, error) {
	return s.InMemoryStore.List(ctx, filter, orderFilterFn, orderSortFn)
}

func (s *InMemoryOrderStore) Count(ctx context.Context, filter *types.OrderFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, orderFilterFn)
}
