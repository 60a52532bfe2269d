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

// LedgerUseCase covers the estate-ledger CRUD plus totals.
type LedgerUseCase struct {
	ledger port.LedgerRepository
}

// NewLedgerUseCase wires dependencies.
func NewLedgerUseCase(ledger port.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledger: ledger}
}

// Create adds a ledger item for userID.
func (uc *LedgerUseCase) Create(ctx context.Context, userID uuid.UUID, req dto.CreateLedgerItemRequest) (model.LedgerItem, error) {
	item, err := model.NewLedgerItem(userID, req.Title, req.Value,
		model.LedgerType(req.Type), req.Description, req.AcquiredAt, time.Now().UTC())
	if err != nil {
		return model.LedgerItem{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	item.Tags = req.Tags

	if err := uc.ledger.Save(ctx, item); err != nil {
		return model.LedgerItem{}, fmt.Errorf("save ledger item: %w", err)
	}
	return item, nil
}

// Update revises an existing item owned by userID.
func (uc *LedgerUseCase) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateLedgerItemRequest) (model.LedgerItem, error) {
	item, err := uc.ledger.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return model.LedgerItem{}, ErrNotFound
		}
		return model.LedgerItem{}, fmt.Errorf("lookup ledger item: %w", err)
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Type != "" {
		t := model.LedgerType(req.Type)
		if !t.IsValid() {
			return model.LedgerItem{}, fmt.Errorf("%w: invalid ledger type", ErrValidation)
		}
		item.Type = t
	}
	if !req.Value.IsZero() {
		item.Value = req.Value
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if !req.AcquiredAt.IsZero() {
		item.AcquiredAt = req.AcquiredAt
	}
	if req.Tags != nil {
		item.Tags = req.Tags
	}
	item.UpdatedAt = time.Now().UTC()

	if err := uc.ledger.Update(ctx, item); err != nil {
		return model.LedgerItem{}, fmt.Errorf("update ledger item: %w", err)
	}
	return item, nil
}

// Delete removes an item owned by userID.
func (uc *LedgerUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.ledger.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete ledger item: %w", err)
	}
	return nil
}

// List returns every item for userID along with per-type totals.
func (uc *LedgerUseCase) List(ctx context.Context, userID uuid.UUID) (dto.LedgerListResponse, error) {
	items, err := uc.ledger.FindByUserID(ctx, userID)
	if err != nil {
		return dto.LedgerListResponse{}, fmt.Errorf("list ledger items: %w", err)
	}
	if items == nil {
		items = []model.LedgerItem{}
	}
	return dto.LedgerListResponse{Items: items, Totals: model.SumLedger(items)}, nil
}
