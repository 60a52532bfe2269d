package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/domain/event"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
	"github.com/4ak45h/Legacy-Planner/internal/domain/service"
)

// SaveProfileUseCase validates and stores the financial profile, running the
// affordability analysis synchronously so the response already carries the
// fresh result.
type SaveProfileUseCase struct {
	profiles  port.ProfileRepository
	engine    *service.Engine
	publisher port.EventPublisher
}

// NewSaveProfileUseCase wires dependencies.
func NewSaveProfileUseCase(profiles port.ProfileRepository, engine *service.Engine, publisher port.EventPublisher) *SaveProfileUseCase {
	return &SaveProfileUseCase{profiles: profiles, engine: engine, publisher: publisher}
}

// Execute upserts the profile for userID and returns it with the recomputed
// analysis embedded.
func (uc *SaveProfileUseCase) Execute(ctx context.Context, userID uuid.UUID, req dto.SaveProfileRequest) (model.FinancialProfile, error) {
	if err := validateProfile(req); err != nil {
		return model.FinancialProfile{}, err
	}

	now := time.Now().UTC()

	profile := model.FinancialProfile{
		ID:                   uuid.New(),
		UserID:               userID,
		FullName:             req.FullName,
		Age:                  req.Age,
		FamilySize:           req.FamilySize,
		EmploymentType:       req.EmploymentType,
		MonthlyIncome:        req.MonthlyIncome,
		AnnualIncome:         req.AnnualIncome,
		CurrentSavings:       req.CurrentSavings,
		InvestmentPortfolio:  req.InvestmentPortfolio,
		CreditScore:          req.CreditScore,
		Budget:               req.Budget,
		MonthlyExpensesTotal: req.Budget.Total(),
		Property:             req.Property,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// Keep the original identity and creation time on re-submission.
	if existing, err := uc.profiles.FindByUserID(ctx, userID); err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, port.ErrNotFound) {
		return model.FinancialProfile{}, fmt.Errorf("lookup profile: %w", err)
	}

	profile.Analysis = uc.engine.Analyze(ctx, profile)

	if err := uc.profiles.Upsert(ctx, profile); err != nil {
		return model.FinancialProfile{}, fmt.Errorf("save profile: %w", err)
	}

	analyzed := event.NewProfileAnalyzed(userID,
		profile.Analysis.AffordabilityScore, profile.Analysis.MLScore != nil)
	if err := uc.publisher.Publish(ctx, analyzed); err != nil {
		return model.FinancialProfile{}, fmt.Errorf("publish events: %w", err)
	}

	return profile, nil
}

func validateProfile(req dto.SaveProfileRequest) error {
	switch {
	case req.MonthlyIncome <= 0:
		return fmt.Errorf("%w: monthlyIncome must be positive", ErrValidation)
	case req.CurrentSavings < 0:
		return fmt.Errorf("%w: currentSavings cannot be negative", ErrValidation)
	case req.Property.TargetPrice <= 0:
		return fmt.Errorf("%w: property.targetPrice must be positive", ErrValidation)
	case req.Property.DownPaymentPercentage <= 0 || req.Property.DownPaymentPercentage > 100:
		return fmt.Errorf("%w: property.downPaymentPercentage must be in (0,100]", ErrValidation)
	case req.Property.DesiredTimelineYears <= 0:
		return fmt.Errorf("%w: property.desiredTimelineYears must be positive", ErrValidation)
	}
	return nil
}
