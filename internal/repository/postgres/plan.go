package postgres

import (
	"context"

	"github.com/subplane/subplane/internal/domain/plan"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
	"github.com/subplane/subplane/internal/types"
)

type planRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPlanRepository(db *postgres.DB, logger *logger.Logger) plan.Repository {
	return &planRepository{db: db, logger: logger}
}

func (r *planRepository) Create(ctx context.Context, plan *plan.Plan) error {
	query := `
		INSERT INTO plans (
			id,
			tenant_id,
			name,
			price,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:name,
			:price,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating plan",
		"plan_id", plan.ID,
		"tenant_id", plan.TenantID,
	)

	_, err := r.db.NamedExecContext(ctx, query, plan)
	if err != nil {
		r.logger.Errorw("failed to create plan", "error", err)
		return ierr.WithError(err).
			WithHint("Failed to create plan").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *planRepository) Get(ctx context.Context, id string) (*plan.Plan, error) {
	query := `
		SELECT * FROM plans
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status != :status_deleted
	`

	var p plan.Plan
	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":             id,
		"tenant_id":      types.GetTenantID(ctx),
		"status_deleted": types.StatusDeleted,
	})
	if err != nil {
		r.logger.Errorw("failed to get plan", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to get plan").
			Mark(ierr.ErrDatabase)
	}

	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("plan not found").
			WithHintf("Plan with ID %s was not found", id).
			WithReportableDetails(map[string]any{
				"plan_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}

	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read plan").
			Mark(ierr.ErrDatabase)
	}

	return &p, nil
}

func (r *planRepository) List(ctx context.Context, filter *types.PlanFilter) ([]*plan.Plan, error) {
	query := `
		SELECT * FROM plans
		WHERE tenant_id = :tenant_id
		AND status = :status
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    filter.GetStatus(),
		"limit":     filter.GetLimit(),
		"offset":    filter.GetOffset(),
	})
	if err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list plans").
			Mark(ierr.ErrDatabase)
	}

	defer rows.Close()

	var plans []*plan.Plan
	for rows.Next() {
		var p plan.Plan
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read plan").
				Mark(ierr.ErrDatabase)
		}
		plans = append(plans, &p)
	}

	return plans, nil
}

func (r *planRepository) Count(ctx context.Context, filter *types.PlanFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM plans
		WHERE tenant_id = :tenant_id
		AND status = :status
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    filter.GetStatus(),
	})
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count plans").
			Mark(ierr.ErrDatabase)
	}

	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to count plans").
				Mark(ierr.ErrDatabase)
		}
	}

	return count, nil
}

func (r *planRepository) Update(ctx context.Context, plan *plan.Plan) error {
	query := `
		UPDATE plans SET
			name = :name,
			price = :price,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating plan",
		"plan_id", plan.ID,
		"tenant_id", plan.TenantID,
	)

	result, err := r.db.NamedExecContext(ctx, query, plan)
	if err != nil {
		r.logger.Errorw("failed to update plan", "error", err)
		return ierr.WithError(err).
			WithHint("Failed to update plan").
			Mark(ierr.ErrDatabase)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update plan").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewError("plan not found").
			WithHintf("Plan with ID %s was not found", plan.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}
