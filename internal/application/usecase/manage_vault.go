package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// VaultUseCase covers the legacy-vault asset CRUD.
type VaultUseCase struct {
	assets port.VaultAssetRepository
}

// NewVaultUseCase wires dependencies.
func NewVaultUseCase(assets port.VaultAssetRepository) *VaultUseCase {
	return &VaultUseCase{assets: assets}
}

// Create adds a vault asset for userID.
func (uc *VaultUseCase) Create(ctx context.Context, userID uuid.UUID, req dto.SaveVaultAssetRequest) (model.VaultAsset, error) {
	asset, err := model.NewVaultAsset(userID, req.Category, req.Name, req.PrimaryData, req.Notes, time.Now().UTC())
	if err != nil {
		return model.VaultAsset{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := uc.assets.Save(ctx, asset); err != nil {
		return model.VaultAsset{}, fmt.Errorf("save vault asset: %w", err)
	}
	return asset, nil
}

// Update revises an asset owned by userID.
func (uc *VaultUseCase) Update(ctx context.Context, userID, id uuid.UUID, req dto.SaveVaultAssetRequest) (model.VaultAsset, error) {
	asset, err := uc.assets.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return model.VaultAsset{}, ErrNotFound
		}
		return model.VaultAsset{}, fmt.Errorf("lookup vault asset: %w", err)
	}

	if req.Category != "" {
		asset.Category = req.Category
	}
	if req.Name != "" {
		asset.Name = req.Name
	}
	if req.PrimaryData != "" {
		asset.PrimaryData = req.PrimaryData
	}
	if req.Notes != "" {
		asset.Notes = req.Notes
	}
	asset.UpdatedAt = time.Now().UTC()

	if err := uc.assets.Update(ctx, asset); err != nil {
		return model.VaultAsset{}, fmt.Errorf("update vault asset: %w", err)
	}
	return asset, nil
}

// Delete removes an asset owned by userID.
func (uc *VaultUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.assets.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete vault asset: %w", err)
	}
	return nil
}

// List returns every asset for userID.
func (uc *VaultUseCase) List(ctx context.Context, userID uuid.UUID) ([]model.VaultAsset, error) {
	assets, err := uc.assets.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list vault assets: %w", err)
	}
	if assets == nil {
		assets = []model.VaultAsset{}
	}
	return assets, nil
}
