package postgres

import (
	"context"

	"github.com/subplane/subplane/internal/domain/activation"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
	"github.com/subplane/subplane/internal/types"
)

type activationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewActivationRepository(db *postgres.DB, logger *logger.Logger) activation.Repository {
	return &activationRepository{db: db, logger: logger}
}

func (r *activationRepository) Create(ctx context.Context, a *activation.Activation) error {
	query := `
		INSERT INTO subscription_activations (
			id,
			tenant_id,
			order_id,
			activation_date,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:order_id,
			:activation_date,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating activation",
		"activation_id", a.ID,
		"order_id", a.OrderID,
	)

	_, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		r.logger.Errorw("failed to create activation", "error", err)
		return ierr.WithError(err).
			WithHint("Failed to create activation").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *activationRepository) Get(ctx context.Context, id string) (*activation.Activation, error) {
	query := `
		SELECT * FROM subscription_activations
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to get activation", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to get activation").
			Mark(ierr.ErrDatabase)
	}

	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("activation not found").
			WithHintf("Activation with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	var a activation.Activation
	if err := rows.StructScan(&a); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read activation").
			Mark(ierr.ErrDatabase)
	}

	return &a, nil
}
