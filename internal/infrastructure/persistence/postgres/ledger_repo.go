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

// LedgerRepo implements port.LedgerRepository.
type LedgerRepo struct {
	db pgshared.Querier
}

// NewLedgerRepo creates a new repository backed by PostgreSQL.
func NewLedgerRepo(db pgshared.Querier) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// Save inserts a ledger item.
func (r *LedgerRepo) Save(ctx context.Context, item model.LedgerItem) error {
	query := `
		INSERT INTO ledger_items (
			id, user_id, type, title, description, value, currency,
			acquired_at, tags, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	if _, err := r.db.Exec(ctx, query,
		item.ID, item.UserID, string(item.Type), item.Title, item.Description,
		item.Value, item.Currency, item.AcquiredAt, item.Tags,
		item.CreatedAt, item.UpdatedAt,
	); err != nil {
		return fmt.Errorf("save ledger item: %w", err)
	}
	return nil
}

// Update rewrites an existing item, scoped to its owner.
func (r *LedgerRepo) Update(ctx context.Context, item model.LedgerItem) error {
	query := `
		UPDATE ledger_items SET
			type = $3, title = $4, description = $5, value = $6,
			acquired_at = $7, tags = $8, updated_at = $9
		WHERE user_id = $1 AND id = $2
	`
	tag, err := r.db.Exec(ctx, query,
		item.UserID, item.ID, string(item.Type), item.Title, item.Description,
		item.Value, item.AcquiredAt, item.Tags, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ledger item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes an item, scoped to its owner.
func (r *LedgerRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM ledger_items WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete ledger item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// FindByID retrieves a single item, scoped to its owner.
func (r *LedgerRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (model.LedgerItem, error) {
	query := `
		SELECT id, user_id, type, title, description, value, currency,
		       acquired_at, tags, created_at, updated_at
		FROM ledger_items
		WHERE user_id = $1 AND id = $2
	`
	item, err := scanLedgerItem(r.db.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LedgerItem{}, port.ErrNotFound
		}
		return model.LedgerItem{}, fmt.Errorf("query ledger item: %w", err)
	}
	return item, nil
}

// FindByUserID retrieves every item for a user, newest first.
func (r *LedgerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.LedgerItem, error) {
	query := `
		SELECT id, user_id, type, title, description, value, currency,
		       acquired_at, tags, created_at, updated_at
		FROM ledger_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query ledger items: %w", err)
	}
	defer rows.Close()

	var items []model.LedgerItem
	for rows.Next() {
		item, err := scanLedgerItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanLedgerItem(s scannable) (model.LedgerItem, error) {
	var (
		item     model.LedgerItem
		itemType string
	)
	err := s.Scan(
		&item.ID, &item.UserID, &itemType, &item.Title, &item.Description,
		&item.Value, &item.Currency, &item.AcquiredAt, &item.Tags,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return model.LedgerItem{}, err
	}
	item.Type = model.LedgerType(itemType)
	return item, nil
}
