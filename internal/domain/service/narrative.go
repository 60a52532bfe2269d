package service

import (
	"fmt"
	"strings"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/pkg/money"
)

// EMI above this share of monthly income triggers the burden warning in the
// feasibility section.
const emiBurdenShare = 0.4

// buildNarrative renders the deterministic markdown report from the computed
// figures. Section order is fixed; downstream consumers (chat grounding, the
// public retrieval endpoint) echo the string verbatim, including the Indian
// digit grouping of every currency figure.
func buildNarrative(p model.FinancialProfile, r model.AnalysisResult) string {
	var b strings.Builder

	propertyName := p.Property.Name
	if propertyName == "" {
		propertyName = "your target property"
	}

	// 1. Oracle prediction callout, only when the oracle answered.
	if r.MLScore != nil {
		fmt.Fprintf(&b, "### AI Success Prediction\n\n")
		fmt.Fprintf(&b,
			"Our prediction model estimates a **%.2f%%** probability that you reach your goal within the planned timeline.\n\n",
			*r.MLScore)
	}

	// 2. Price appreciation scenarios.
	proj := r.PriceProjection
	fmt.Fprintf(&b, "### Price Appreciation Outlook\n\n")
	fmt.Fprintf(&b,
		"Today's price of **%s** is projected over %s years under three annual appreciation scenarios:\n\n",
		money.FormatINR(proj.CurrentPrice), formatYears(p.Property.DesiredTimelineYears))
	fmt.Fprintf(&b, "| Scenario | Annual Rate | Projected Price |\n")
	fmt.Fprintf(&b, "| --- | --- | --- |\n")
	fmt.Fprintf(&b, "| Conservative | %.0f%% | %s |\n",
		proj.AppreciationRates.Conservative*100, money.FormatINR(proj.Conservative))
	fmt.Fprintf(&b, "| Expected | %.0f%% | %s |\n",
		proj.AppreciationRates.Expected*100, money.FormatINR(proj.Expected))
	fmt.Fprintf(&b, "| Aggressive | %.0f%% | %s |\n\n",
		proj.AppreciationRates.Aggressive*100, money.FormatINR(proj.Aggressive))
	fmt.Fprintf(&b,
		"All planning figures below use the **expected** scenario price of **%s**.\n\n",
		money.FormatINR(proj.Expected))

	// 3. Feasibility.
	fmt.Fprintf(&b, "### Financial Feasibility\n\n")
	shortfall := r.TargetDownPayment - roundToInt64(p.CurrentSavings)
	if shortfall > 0 {
		fmt.Fprintf(&b,
			"Based on your current financial situation, purchasing %s needs preparation. Here's why:\n\n",
			propertyName)
		fmt.Fprintf(&b,
			"**Down Payment:** You need **%s** more in savings to meet the down payment target of **%s**.\n\n",
			money.FormatINR(shortfall), money.FormatINR(r.TargetDownPayment))
	} else {
		fmt.Fprintf(&b,
			"Your profile shows excellent financial stability. You have sufficient savings for the down payment of **%s** and a healthy income to support the loan.\n\n",
			money.FormatINR(r.TargetDownPayment))
	}
	if p.MonthlyIncome > 0 && float64(r.EstimatedEMI) > p.MonthlyIncome*emiBurdenShare {
		fmt.Fprintf(&b,
			"**EMI Requirements:** At **%s** per month, the EMI would be **%.1f%%** of your monthly income (**%s**). This is beyond the comfortable limit.\n\n",
			money.FormatINR(r.EstimatedEMI),
			float64(r.EstimatedEMI)/p.MonthlyIncome*100,
			money.FormatINR(roundToInt64(p.MonthlyIncome)))
	}

	// 4. Savings strategy.
	fmt.Fprintf(&b, "### Savings Strategy\n\n")
	if r.MonthlySavingsRequired > 0 {
		fmt.Fprintf(&b,
			"To achieve your goal in %s years, you need to save **%s** monthly. Your current saving potential is **%s** per month.\n\n",
			formatYears(p.Property.DesiredTimelineYears),
			money.FormatINR(r.MonthlySavingsRequired),
			money.FormatINR(r.MonthlySavingsPotential))
	} else {
		fmt.Fprintf(&b,
			"You already have enough saved for the down payment. Focus on building an emergency fund or increasing your investment portfolio.\n\n")
	}

	// 5. Fixed recommendations.
	fmt.Fprintf(&b, "### Actionable Steps\n\n")
	step := 1
	fmt.Fprintf(&b, "%d. **Increase Income:** Seek opportunities for salary increments or additional side jobs.\n", step)
	step++
	fmt.Fprintf(&b, "%d. **Budget Refinement:** Cut unnecessary expenses and channel funds towards savings.\n", step)
	step++
	if p.Budget.DebtPayments > 0 {
		fmt.Fprintf(&b, "%d. **Debt Repayment:** Prioritize clearing existing debt of **%s** per month to reduce your financial burden.\n",
			step, money.FormatINR(roundToInt64(p.Budget.DebtPayments)))
		step++
	}
	fmt.Fprintf(&b, "%d. **Build Credit:** Maintain and improve your credit score (currently %d) for better loan terms.\n",
		step, p.CreditScore)

	return b.String()
}

// formatYears renders a timeline without a trailing ".0" for whole years.
func formatYears(years float64) string {
	if years == float64(int64(years)) {
		return fmt.Sprintf("%d", int64(years))
	}
	return fmt.Sprintf("%.1f", years)
}
