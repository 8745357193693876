package postgres

import (
	"context"

	"github.com/subplane/subplane/internal/domain/order"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
	"github.com/subplane/subplane/internal/types"
)

type orderRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewOrderRepository(db *postgres.DB, logger *logger.Logger) order.Repository {
	return &orderRepository{db: db, logger: logger}
}

func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	query := `
		INSERT INTO orders (
			id,
			tenant_id,
			reference_id,
			subscription_id,
			amount,
			payment_date,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:reference_id,
			:subscription_id,
			:amount,
			:payment_date,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating order",
		"order_id", o.ID,
		"subscription_id", o.SubscriptionID,
		"amount", o.Amount,
	)

	_, err := r.db.NamedExecContext(ctx, query, o)
	if err != nil {
		r.logger.Errorw("failed to create order", "error", err)
		return ierr.WithError(err).
			WithHint("Failed to create order").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	query := `
		SELECT * FROM orders
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to get order", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to get order").
			Mark(ierr.ErrDatabase)
	}

	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("order not found").
			WithHintf("Order with ID %s was not found", id).
			WithReportableDetails(map[string]any{
				"order_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}

	var o order.Order
	if err := rows.StructScan(&o); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read order").
			Mark(ierr.ErrDatabase)
	}

	return &o, nil
}

func (r *orderRepository) List(ctx context.Context, filter *types.OrderFilter) ([]*order.Order, error) {
	query := `
		SELECT * FROM orders
		WHERE tenant_id = :tenant_id
		AND (:subscription_id = '' OR subscription_id = :subscription_id)
		ORDER BY payment_date DESC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id":       types.GetTenantID(ctx),
		"subscription_id": filter.SubscriptionID,
		"limit":           filter.GetLimit(),
		"offset":          filter.GetOffset(),
	})
	if err != nil {
		r.logger.Errorw("failed to list orders", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list orders").
			Mark(ierr.ErrDatabase)
	}

	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.StructScan(&o); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read order").
				Mark(ierr.ErrDatabase)
		}
		orders = append(orders, &o)
	}

	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context, filter *types.OrderFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM orders
		WHERE tenant_id = :tenant_id
		AND (:subscription_id = '' OR subscription_id = :subscription_id)
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id":       types.GetTenantID(ctx),
		"subscription_id": filter.SubscriptionID,
	})
	if err != nil {
		r.logger.Errorw("failed to count orders", "error", err)
		return 0, ierr.WithError(err).
			WithHint("Failed to count orders").
			Mark(ierr.ErrDatabase)
	}

	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to count orders").
				Mark(ierr.ErrDatabase)
		}
	}

	return count, nil
}
