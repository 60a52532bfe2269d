// Package postgres implements the planner's repository ports on PostgreSQL
// via pgx. All repos translate pgx.ErrNoRows to port.ErrNotFound so callers
// never see driver sentinels.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
	pgshared "github.com/4ak45h/Legacy-Planner/pkg/postgres"
)

// UserRepo implements port.UserRepository.
type UserRepo struct {
	db pgshared.Querier
}

// NewUserRepo creates a new repository backed by PostgreSQL.
func NewUserRepo(db pgshared.Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Save inserts a new account. Email uniqueness is enforced by the schema.
func (r *UserRepo) Save(ctx context.Context, user model.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt,
	); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// FindByID retrieves an account by primary key.
func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

// FindByEmail retrieves an account by email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanOne(ctx, query, email)
}

func (r *UserRepo) scanOne(ctx context.Context, query string, args ...any) (model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, port.ErrNotFound
		}
		return model.User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}
