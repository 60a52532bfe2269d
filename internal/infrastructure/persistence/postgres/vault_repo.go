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

// VaultRepo implements port.VaultAssetRepository.
type VaultRepo struct {
	db pgshared.Querier
}

// NewVaultRepo creates a new repository backed by PostgreSQL.
func NewVaultRepo(db pgshared.Querier) *VaultRepo {
	return &VaultRepo{db: db}
}

// Save inserts a vault asset.
func (r *VaultRepo) Save(ctx context.Context, asset model.VaultAsset) error {
	query := `
		INSERT INTO vault_assets (
			id, user_id, category, name, primary_data, notes, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	if _, err := r.db.Exec(ctx, query,
		asset.ID, asset.UserID, asset.Category, asset.Name,
		asset.PrimaryData, asset.Notes, asset.UpdatedAt,
	); err != nil {
		return fmt.Errorf("save vault asset: %w", err)
	}
	return nil
}

// Update rewrites an asset, scoped to its owner.
func (r *VaultRepo) Update(ctx context.Context, asset model.VaultAsset) error {
	query := `
		UPDATE vault_assets SET
			category = $3, name = $4, primary_data = $5, notes = $6, updated_at = $7
		WHERE user_id = $1 AND id = $2
	`
	tag, err := r.db.Exec(ctx, query,
		asset.UserID, asset.ID, asset.Category, asset.Name,
		asset.PrimaryData, asset.Notes, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vault asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes an asset, scoped to its owner.
func (r *VaultRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM vault_assets WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete vault asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// FindByID retrieves a single asset, scoped to its owner.
func (r *VaultRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (model.VaultAsset, error) {
	query := `
		SELECT id, user_id, category, name, primary_data, notes, updated_at
		FROM vault_assets
		WHERE user_id = $1 AND id = $2
	`
	var asset model.VaultAsset
	err := r.db.QueryRow(ctx, query, userID, id).Scan(
		&asset.ID, &asset.UserID, &asset.Category, &asset.Name,
		&asset.PrimaryData, &asset.Notes, &asset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VaultAsset{}, port.ErrNotFound
		}
		return model.VaultAsset{}, fmt.Errorf("query vault asset: %w", err)
	}
	return asset, nil
}

// FindByUserID retrieves every asset for a user, grouped by category.
func (r *VaultRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.VaultAsset, error) {
	query := `
		SELECT id, user_id, category, name, primary_data, notes, updated_at
		FROM vault_assets
		WHERE user_id = $1
		ORDER BY category, name
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query vault assets: %w", err)
	}
	defer rows.Close()

	var assets []model.VaultAsset
	for rows.Next() {
		var asset model.VaultAsset
		if err := rows.Scan(
			&asset.ID, &asset.UserID, &asset.Category, &asset.Name,
			&asset.PrimaryData, &asset.Notes, &asset.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vault asset: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}
