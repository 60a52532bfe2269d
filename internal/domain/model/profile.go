package model

import (
	"time"

	"github.com/google/uuid"
)

// Budget is the monthly expense breakdown a user maintains. The planner
// derives MonthlyExpensesTotal from it on every save; DebtPayments also feeds
// the debt-ratio math in the analysis engine.
type Budget struct {
	Housing        float64 `json:"housing"`
	Utilities      float64 `json:"utilities"`
	Groceries      float64 `json:"groceries"`
	Transportation float64 `json:"transportation"`
	DebtPayments   float64 `json:"debtPayments"`
	Health         float64 `json:"health"`
	Entertainment  float64 `json:"entertainment"`
	Other          float64 `json:"other"`
}

// Total sums every budget category.
func (b Budget) Total() float64 {
	return b.Housing + b.Utilities + b.Groceries + b.Transportation +
		b.DebtPayments + b.Health + b.Entertainment + b.Other
}

// Property describes the dream property a user is planning for.
type Property struct {
	Name                  string  `json:"name"`
	Type                  string  `json:"type"`
	Location              string  `json:"location"`
	TargetPrice           float64 `json:"targetPrice"`
	DownPaymentPercentage float64 `json:"downPaymentPercentage"`
	DesiredTimelineYears  float64 `json:"desiredTimelineYears"`
}

// FinancialProfile is the single per-user planning document. The embedded
// Analysis is recomputed in full on every save and carries no history.
type FinancialProfile struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`

	FullName       string `json:"fullName"`
	Age            int    `json:"age"`
	FamilySize     int    `json:"familySize"`
	EmploymentType string `json:"employmentType"`

	MonthlyIncome       float64 `json:"monthlyIncome"`
	AnnualIncome        float64 `json:"annualIncome"`
	CurrentSavings      float64 `json:"currentSavings"`
	InvestmentPortfolio float64 `json:"investmentPortfolio"`
	CreditScore         int     `json:"creditScore"`

	Budget               Budget  `json:"budget"`
	MonthlyExpensesTotal float64 `json:"monthlyExpensesTotal"`

	Property Property `json:"property"`

	Analysis AnalysisResult `json:"analysis"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
