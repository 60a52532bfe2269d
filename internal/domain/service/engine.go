// Package service holds the planner's domain services, chief among them the
// affordability analysis engine that runs on every profile save.
package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Engine – affordability analysis over a financial profile snapshot
// ---------------------------------------------------------------------------

// Config carries every tunable the engine uses. All values have sensible
// defaults via DefaultConfig; nothing is read from the environment here.
type Config struct {
	// AnnualInterestRate is the assumed home-loan rate (e.g. 0.09 for 9%).
	AnnualInterestRate float64
	// LoanTenureYears is the assumed loan tenure.
	LoanTenureYears float64
	// AppreciationRates is the fixed three-scenario table.
	AppreciationRates model.AppreciationRates
	// RuleWeight and OracleWeight blend the rule score with the oracle score.
	// They must sum to 1.
	RuleWeight   float64
	OracleWeight float64
	// OracleTimeout bounds the single network call the engine makes.
	OracleTimeout time.Duration
}

// DefaultConfig returns the production engine configuration.
//
// The rule-score table and the 0.6/0.4 blend are the fine-banded variant;
// they are fixed here rather than configurable because the narrative and the
// dashboard both assume these exact bands.
func DefaultConfig() Config {
	return Config{
		AnnualInterestRate: 0.09,
		LoanTenureYears:    20,
		AppreciationRates: model.AppreciationRates{
			Conservative: 0.05,
			Expected:     0.07,
			Aggressive:   0.10,
		},
		RuleWeight:    0.6,
		OracleWeight:  0.4,
		OracleTimeout: 15 * time.Second,
	}
}

// Rule-score bands over the EMI-affordability ratio, plus the credit-score
// adjustment applied after band selection. The final score is clamped to
// [0,100].
const (
	ratioBandExcellent = 30.0
	ratioBandGood      = 40.0
	ratioBandStretch   = 50.0

	scoreExcellent = 80
	scoreGood      = 60
	scoreStretch   = 40
	scoreStrained  = 10

	creditScoreHigh = 780
	creditScoreLow  = 650
	creditAdjust    = 10
)

// Engine computes a complete AnalysisResult from a profile. It is stateless
// and safe for concurrent use; the oracle call is its only suspension point.
type Engine struct {
	cfg    Config
	oracle port.SuccessOracle
	logger *slog.Logger
}

// NewEngine returns an engine. oracle may be nil, in which case every
// analysis degrades to rule-only scoring.
func NewEngine(cfg Config, oracle port.SuccessOracle, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, oracle: oracle, logger: logger}
}

// Analyze runs the full pipeline: price projection, savings gap, EMI, hybrid
// scoring and narrative. It never fails; oracle trouble is logged and the
// score degrades to the rule-based value.
func (e *Engine) Analyze(ctx context.Context, p model.FinancialProfile) model.AnalysisResult {
	prop := p.Property

	projection := e.ProjectPrices(prop.TargetPrice, prop.DesiredTimelineYears)
	expectedPrice := float64(projection.Expected)

	targetDownPayment := expectedPrice * (prop.DownPaymentPercentage / 100)
	loanAmount := expectedPrice - targetDownPayment

	emi := CalculateEMI(loanAmount, e.cfg.AnnualInterestRate, e.cfg.LoanTenureYears)

	months := prop.DesiredTimelineYears * 12
	shortfall := targetDownPayment - p.CurrentSavings
	var savingsRequired float64
	if shortfall > 0 && months > 0 {
		savingsRequired = shortfall / months
	}
	savingsPotential := p.MonthlyIncome - p.MonthlyExpensesTotal

	ruleScore := e.ruleScore(emi, p.Budget.DebtPayments, p.MonthlyIncome, p.CreditScore)

	mlScore := e.askOracle(ctx, p, expectedPrice)

	finalScore := ruleScore
	if mlScore != nil {
		finalScore = clampScore(int(math.Round(
			float64(ruleScore)*e.cfg.RuleWeight + *mlScore*e.cfg.OracleWeight)))
	}

	result := model.AnalysisResult{
		AffordabilityScore:      finalScore,
		EstimatedEMI:            roundToInt64(emi),
		MonthlySavingsRequired:  roundToInt64(savingsRequired),
		MonthlySavingsPotential: roundToInt64(savingsPotential),
		LoanAmount:              roundToInt64(loanAmount),
		TargetDownPayment:       roundToInt64(targetDownPayment),
		MLScore:                 mlScore,
		PriceProjection:         projection,
	}
	result.AIAnalysisMarkdown = buildNarrative(p, result)
	return result
}

// CalculateEMI returns the fixed monthly installment for the standard
// amortization formula P·r·(1+r)^n / ((1+r)^n − 1). When the rate or the
// term degenerates to zero it falls back to straight-line repayment.
func CalculateEMI(principal, annualRate, tenureYears float64) float64 {
	r := annualRate / 12
	n := tenureYears * 12
	if r == 0 || n == 0 {
		return principal / math.Max(n, 1)
	}
	factor := math.Pow(1+r, n)
	return principal * r * factor / (factor - 1)
}

// ProjectPrices computes the three-scenario appreciated price. The expected
// scenario is the one every downstream figure is derived from.
func (e *Engine) ProjectPrices(targetPrice, years float64) model.PriceProjection {
	rates := e.cfg.AppreciationRates
	project := func(rate float64) int64 {
		return roundToInt64(targetPrice * math.Pow(1+rate, years))
	}
	return model.PriceProjection{
		CurrentPrice:      roundToInt64(targetPrice),
		Conservative:      project(rates.Conservative),
		Expected:          project(rates.Expected),
		Aggressive:        project(rates.Aggressive),
		AppreciationRates: rates,
	}
}

// ruleScore maps the EMI-affordability ratio into the band table, then
// applies the credit adjustment and clamps.
func (e *Engine) ruleScore(emi, debtPayments, monthlyIncome float64, creditScore int) int {
	if monthlyIncome <= 0 {
		return clampScore(scoreStrained)
	}
	ratio := (emi + debtPayments) / monthlyIncome * 100

	var score int
	switch {
	case ratio < ratioBandExcellent:
		score = scoreExcellent
	case ratio < ratioBandGood:
		score = scoreGood
	case ratio < ratioBandStretch:
		score = scoreStretch
	default:
		score = scoreStrained
	}

	if creditScore > creditScoreHigh {
		score += creditAdjust
	} else if creditScore > 0 && creditScore < creditScoreLow {
		score -= creditAdjust
	}
	return clampScore(score)
}

// askOracle performs the bounded oracle call and normalizes the result to a
// 0–100 percentage with two decimals. Any failure yields nil.
func (e *Engine) askOracle(ctx context.Context, p model.FinancialProfile, projectedPrice float64) *float64 {
	if e.oracle == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.OracleTimeout)
	defer cancel()

	raw, err := e.oracle.PredictSuccess(ctx, port.OracleRequest{
		MonthlyIncome:        p.MonthlyIncome,
		CurrentSavings:       p.CurrentSavings,
		MonthlyExpensesTotal: p.MonthlyExpensesTotal,
		DesiredTimelineYears: p.Property.DesiredTimelineYears,
		TargetPrice:          projectedPrice,
	})
	if err != nil {
		e.logger.Warn("success oracle unavailable, falling back to rule score",
			"error", err)
		return nil
	}

	normalized := NormalizeProbability(raw)
	return &normalized
}

// NormalizeProbability maps an oracle value reported as either a [0,1]
// fraction or a [0,100] percentage onto a 0–100 percentage rounded to two
// decimals.
func NormalizeProbability(raw float64) float64 {
	if raw <= 1 {
		raw *= 100
	}
	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}
	return math.Round(raw*100) / 100
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func roundToInt64(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}
