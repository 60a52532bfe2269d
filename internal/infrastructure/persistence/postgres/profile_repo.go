package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
	pgshared "github.com/4ak45h/Legacy-Planner/pkg/postgres"
)

// ProfileRepo implements port.ProfileRepository. Budget, property, and the
// embedded analysis live in JSONB columns; the analysis is replaced whole on
// every save, matching its no-history lifecycle.
type ProfileRepo struct {
	db pgshared.Querier
}

// NewProfileRepo creates a new repository backed by PostgreSQL.
func NewProfileRepo(db pgshared.Querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Upsert saves the single profile per user, keyed on user_id.
func (r *ProfileRepo) Upsert(ctx context.Context, profile model.FinancialProfile) error {
	budget, err := json.Marshal(profile.Budget)
	if err != nil {
		return fmt.Errorf("marshal budget: %w", err)
	}
	property, err := json.Marshal(profile.Property)
	if err != nil {
		return fmt.Errorf("marshal property: %w", err)
	}
	analysis, err := json.Marshal(profile.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	query := `
		INSERT INTO financial_profiles (
			id, user_id, full_name, age, family_size, employment_type,
			monthly_income, annual_income, current_savings, investment_portfolio,
			credit_score, budget, monthly_expenses_total, property, analysis,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name              = EXCLUDED.full_name,
			age                    = EXCLUDED.age,
			family_size            = EXCLUDED.family_size,
			employment_type        = EXCLUDED.employment_type,
			monthly_income         = EXCLUDED.monthly_income,
			annual_income          = EXCLUDED.annual_income,
			current_savings        = EXCLUDED.current_savings,
			investment_portfolio   = EXCLUDED.investment_portfolio,
			credit_score           = EXCLUDED.credit_score,
			budget                 = EXCLUDED.budget,
			monthly_expenses_total = EXCLUDED.monthly_expenses_total,
			property               = EXCLUDED.property,
			analysis               = EXCLUDED.analysis,
			updated_at             = EXCLUDED.updated_at
	`
	if _, err := r.db.Exec(ctx, query,
		profile.ID, profile.UserID, profile.FullName, profile.Age,
		profile.FamilySize, profile.EmploymentType,
		profile.MonthlyIncome, profile.AnnualIncome,
		profile.CurrentSavings, profile.InvestmentPortfolio,
		profile.CreditScore, budget, profile.MonthlyExpensesTotal,
		property, analysis, profile.CreatedAt, profile.UpdatedAt,
	); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// FindByUserID retrieves a user's profile with its last analysis.
func (r *ProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (model.FinancialProfile, error) {
	query := `
		SELECT id, user_id, full_name, age, family_size, employment_type,
		       monthly_income, annual_income, current_savings, investment_portfolio,
		       credit_score, budget, monthly_expenses_total, property, analysis,
		       created_at, updated_at
		FROM financial_profiles
		WHERE user_id = $1
	`
	var (
		profile                    model.FinancialProfile
		budget, property, analysis []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.FullName, &profile.Age,
		&profile.FamilySize, &profile.EmploymentType,
		&profile.MonthlyIncome, &profile.AnnualIncome,
		&profile.CurrentSavings, &profile.InvestmentPortfolio,
		&profile.CreditScore, &budget, &profile.MonthlyExpensesTotal,
		&property, &analysis, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FinancialProfile{}, port.ErrNotFound
		}
		return model.FinancialProfile{}, fmt.Errorf("query profile: %w", err)
	}

	if err := json.Unmarshal(budget, &profile.Budget); err != nil {
		return model.FinancialProfile{}, fmt.Errorf("unmarshal budget: %w", err)
	}
	if err := json.Unmarshal(property, &profile.Property); err != nil {
		return model.FinancialProfile{}, fmt.Errorf("unmarshal property: %w", err)
	}
	if err := json.Unmarshal(analysis, &profile.Analysis); err != nil {
		return model.FinancialProfile{}, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return profile, nil
}
