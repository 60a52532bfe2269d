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

// WillRepo implements port.WillRepository.
type WillRepo struct {
	db pgshared.Querier
}

// NewWillRepo creates a new repository backed by PostgreSQL.
func NewWillRepo(db pgshared.Querier) *WillRepo {
	return &WillRepo{db: db}
}

// Upsert saves the single will per user, keyed on user_id.
func (r *WillRepo) Upsert(ctx context.Context, will model.Will) error {
	query := `
		INSERT INTO wills (
			id, user_id, location, executor_name, executor_phone,
			lawyer_name, lawyer_contact, notes, last_update_reason, last_updated
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (user_id) DO UPDATE SET
			location           = EXCLUDED.location,
			executor_name      = EXCLUDED.executor_name,
			executor_phone     = EXCLUDED.executor_phone,
			lawyer_name        = EXCLUDED.lawyer_name,
			lawyer_contact     = EXCLUDED.lawyer_contact,
			notes              = EXCLUDED.notes,
			last_update_reason = EXCLUDED.last_update_reason,
			last_updated       = EXCLUDED.last_updated
	`
	if _, err := r.db.Exec(ctx, query,
		will.ID, will.UserID, will.Location, will.ExecutorName, will.ExecutorPhone,
		will.LawyerName, will.LawyerContact, will.Notes,
		will.LastUpdateReason, will.LastUpdated,
	); err != nil {
		return fmt.Errorf("save will: %w", err)
	}
	return nil
}

// FindByUserID retrieves a user's will.
func (r *WillRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (model.Will, error) {
	query := `
		SELECT id, user_id, location, executor_name, executor_phone,
		       lawyer_name, lawyer_contact, notes, last_update_reason, last_updated
		FROM wills
		WHERE user_id = $1
	`
	var will model.Will
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&will.ID, &will.UserID, &will.Location, &will.ExecutorName, &will.ExecutorPhone,
		&will.LawyerName, &will.LawyerContact, &will.Notes,
		&will.LastUpdateReason, &will.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Will{}, port.ErrNotFound
		}
		return model.Will{}, fmt.Errorf("query will: %w", err)
	}
	return will, nil
}
