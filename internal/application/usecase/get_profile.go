package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// GetProfileUseCase reads the stored profile with its last analysis.
type GetProfileUseCase struct {
	profiles port.ProfileRepository
}

// NewGetProfileUseCase wires dependencies.
func NewGetProfileUseCase(profiles port.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{profiles: profiles}
}

// Execute returns the user's profile, or ErrNotFound when none was saved yet.
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) (model.FinancialProfile, error) {
	profile, err := uc.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return model.FinancialProfile{}, ErrNotFound
		}
		return model.FinancialProfile{}, fmt.Errorf("lookup profile: %w", err)
	}
	return profile, nil
}
