package postgres

import (
	"context"

	"github.com/subplane/subplane/internal/domain/user"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/postgres"
	"github.com/subplane/subplane/internal/types"
)

type userRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, user *user.User) error {
	query := `
		INSERT INTO users (
			id,
			tenant_id,
			email,
			is_admin,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:email,
			:is_admin,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating user",
		"user_id", user.ID,
		"tenant_id", user.TenantID,
	)

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		r.logger.Errorw("failed to create user", "error", err)
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `
		SELECT * FROM users
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	return r.getOne(ctx, query, map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT * FROM users
		WHERE email = :email
		AND tenant_id = :tenant_id
	`

	return r.getOne(ctx, query, map[string]interface{}{
		"email":     email,
		"tenant_id": types.GetTenantID(ctx),
	})
}

func (r *userRepository) getOne(ctx context.Context, query string, args map[string]interface{}) (*user.User, error) {
	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		r.logger.Errorw("failed to get user", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to get user").
			Mark(ierr.ErrDatabase)
	}

	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("user not found").
			WithHint("User was not found").
			Mark(ierr.ErrNotFound)
	}

	var u user.User
	if err := rows.StructScan(&u); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read user").
			Mark(ierr.ErrDatabase)
	}

	return &u, nil
}
